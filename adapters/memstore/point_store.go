package memstore

import (
	"context"
	"sync"

	"statviz/domain/core"
	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/ports"
)

// PointStore is the in-memory, versioned point collection behind the
// regression panel. There is exactly one logical writer (the UI thread), but
// the HTTP layer may serve concurrent reads, so access is mutex-guarded.
type PointStore struct {
	mu       sync.RWMutex
	id       core.DatasetID
	points   []demo.Point
	viewport demo.Viewport
	version  uint64
}

// NewPointStore creates a store seeded with the given points.
func NewPointStore(points []demo.Point, viewport demo.Viewport) *PointStore {
	s := &PointStore{
		id:       core.NewDatasetID(),
		points:   append([]demo.Point(nil), points...),
		viewport: viewport,
	}
	return s
}

// ID returns the dataset identifier.
func (s *PointStore) ID() core.DatasetID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *PointStore) snapshotLocked() ports.PointSnapshot {
	return ports.PointSnapshot{
		Points:   append([]demo.Point(nil), s.points...),
		Viewport: s.viewport,
		Version:  s.version,
	}
}

// Snapshot returns an immutable copy of the current state.
func (s *PointStore) Snapshot(ctx context.Context) ports.PointSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// AddPoint appends a point and bumps the version.
func (s *PointStore) AddPoint(ctx context.Context, p demo.Point) (ports.PointSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
	s.version++
	return s.snapshotLocked(), nil
}

// MovePoint replaces the point at index and bumps the version.
func (s *PointStore) MovePoint(ctx context.Context, index int, p demo.Point) (ports.PointSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.points) {
		return s.snapshotLocked(), errors.NotFound("point")
	}
	s.points[index] = p
	s.version++
	return s.snapshotLocked(), nil
}

// RemovePoint deletes the point at index and bumps the version.
func (s *PointStore) RemovePoint(ctx context.Context, index int) (ports.PointSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.points) {
		return s.snapshotLocked(), errors.NotFound("point")
	}
	s.points = append(s.points[:index], s.points[index+1:]...)
	s.version++
	return s.snapshotLocked(), nil
}

// SetViewport updates the visible ranges and bumps the version.
func (s *PointStore) SetViewport(ctx context.Context, v demo.Viewport) (ports.PointSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.XMax <= v.XMin || v.YMax <= v.YMin {
		return s.snapshotLocked(), errors.InvalidInput("viewport ranges must be positive")
	}
	s.viewport = v
	s.version++
	return s.snapshotLocked(), nil
}

// Reset replaces the whole collection, bumping the version once.
func (s *PointStore) Reset(ctx context.Context, points []demo.Point) (ports.PointSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append([]demo.Point(nil), points...)
	s.version++
	return s.snapshotLocked(), nil
}

var _ ports.PointStore = (*PointStore)(nil)
