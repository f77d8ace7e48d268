package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statviz/domain/demo"
)

func TestPointStore_CommandsBumpVersion(t *testing.T) {
	ctx := context.Background()
	store := NewPointStore([]demo.Point{{X: 1, Y: 1}}, demo.Viewport{XMin: 0, XMax: 10, YMin: 0, YMax: 10})

	snap := store.Snapshot(ctx)
	assert.Equal(t, uint64(0), snap.Version)
	require.Len(t, snap.Points, 1)

	snap, err := store.AddPoint(ctx, demo.Point{X: 2, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Points, 2)

	snap, err = store.MovePoint(ctx, 0, demo.Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Version)
	assert.Equal(t, demo.Point{X: 5, Y: 5}, snap.Points[0])

	snap, err = store.RemovePoint(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), snap.Version)
	assert.Len(t, snap.Points, 1)

	snap, err = store.SetViewport(ctx, demo.Viewport{XMin: -5, XMax: 5, YMin: -5, YMax: 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), snap.Version)
}

func TestPointStore_InvalidCommands(t *testing.T) {
	ctx := context.Background()
	store := NewPointStore(nil, demo.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1})

	_, err := store.MovePoint(ctx, 0, demo.Point{})
	assert.Error(t, err)

	_, err = store.RemovePoint(ctx, -1)
	assert.Error(t, err)

	_, err = store.SetViewport(ctx, demo.Viewport{XMin: 1, XMax: 0, YMin: 0, YMax: 1})
	assert.Error(t, err)

	// Failed commands must not advance the version
	assert.Equal(t, uint64(0), store.Snapshot(ctx).Version)
}

func TestPointStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewPointStore([]demo.Point{{X: 1, Y: 1}}, demo.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1})

	snap := store.Snapshot(ctx)
	snap.Points[0] = demo.Point{X: 99, Y: 99}

	fresh := store.Snapshot(ctx)
	assert.Equal(t, demo.Point{X: 1, Y: 1}, fresh.Points[0], "snapshot must copy points")
}
