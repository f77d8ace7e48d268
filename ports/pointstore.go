package ports

import (
	"context"

	"statviz/domain/demo"
)

// PointSnapshot is an immutable view of the regression point collection.
// Version increases by one on every successful mutating command, so a
// recompute can be keyed to the state that produced it.
type PointSnapshot struct {
	Points   []demo.Point
	Viewport demo.Viewport
	Version  uint64
}

// PointStore is the command interface the UI issues against the owned,
// versioned regression point collection. Each command triggers a regression
// recompute in the caller; the store itself holds no derived state.
type PointStore interface {
	AddPoint(ctx context.Context, p demo.Point) (PointSnapshot, error)
	MovePoint(ctx context.Context, index int, p demo.Point) (PointSnapshot, error)
	RemovePoint(ctx context.Context, index int) (PointSnapshot, error)
	SetViewport(ctx context.Context, v demo.Viewport) (PointSnapshot, error)
	Snapshot(ctx context.Context) PointSnapshot
	Reset(ctx context.Context, points []demo.Point) (PointSnapshot, error)
}
