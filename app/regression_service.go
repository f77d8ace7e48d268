package app

import (
	"context"

	"statviz/domain/core"
	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/internal/regression"
	"statviz/ports"
)

// curveSamples is how many x positions the fitted curve and its band are
// evaluated at across the viewport.
const curveSamples = 100

// RegressionService drives the polynomial regression panel. The point
// collection is owned by the store; every command against it is followed by
// a Recompute keyed to the snapshot version.
type RegressionService struct {
	store ports.PointStore
}

// NewRegressionService creates a regression demo service over the store.
func NewRegressionService(store ports.PointStore) *RegressionService {
	return &RegressionService{store: store}
}

// RegressionResult is the recomputed panel state. Insufficient points leave
// Model nil with InsufficientData set, so the UI shows a "not enough data"
// state instead of a stale curve.
type RegressionResult struct {
	RunID            core.RunID            `json:"run_id"`
	Version          uint64                `json:"version"`
	Points           []demo.Point          `json:"points"`
	Degree           int                   `json:"degree"`
	Model            *regression.Model     `json:"model,omitempty"`
	Stats            *demo.RegressionStats `json:"stats,omitempty"`
	CurveX           []float64             `json:"curve_x,omitempty"`
	CurveY           []float64             `json:"curve_y,omitempty"`
	Band             []demo.BandPoint      `json:"band,omitempty"`
	InsufficientData bool                  `json:"insufficient_data"`
}

// Recompute fits the current point collection at the given degree.
func (s *RegressionService) Recompute(ctx context.Context, degree int) (*RegressionResult, error) {
	snap := s.store.Snapshot(ctx)

	result := &RegressionResult{
		RunID:   core.NewRunID(),
		Version: snap.Version,
		Points:  snap.Points,
		Degree:  degree,
	}

	xs := make([]float64, len(snap.Points))
	ys := make([]float64, len(snap.Points))
	for i, p := range snap.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	model, err := regression.Fit(xs, ys, degree)
	if err != nil {
		if errors.GetCode(err) == errors.CodeInsufficientData {
			result.InsufficientData = true
			return result, nil
		}
		return nil, err
	}

	stats := regression.Statistics(ys, model.Predict(xs), degree)

	// Evaluate the curve and band across the visible x range
	curveX := make([]float64, curveSamples)
	step := (snap.Viewport.XMax - snap.Viewport.XMin) / float64(curveSamples-1)
	for i := range curveX {
		curveX[i] = snap.Viewport.XMin + float64(i)*step
	}

	result.Model = model
	result.Stats = &stats
	result.CurveX = curveX
	result.CurveY = model.Predict(curveX)
	result.Band = model.ConfidenceBand(curveX, stats.Residuals)
	return result, nil
}

// AddPoint issues the command and recomputes.
func (s *RegressionService) AddPoint(ctx context.Context, p demo.Point, degree int) (*RegressionResult, error) {
	if _, err := s.store.AddPoint(ctx, p); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, degree)
}

// MovePoint issues the command and recomputes.
func (s *RegressionService) MovePoint(ctx context.Context, index int, p demo.Point, degree int) (*RegressionResult, error) {
	if _, err := s.store.MovePoint(ctx, index, p); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, degree)
}

// RemovePoint issues the command and recomputes.
func (s *RegressionService) RemovePoint(ctx context.Context, index int, degree int) (*RegressionResult, error) {
	if _, err := s.store.RemovePoint(ctx, index); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, degree)
}

// SetViewport issues the command and recomputes.
func (s *RegressionService) SetViewport(ctx context.Context, v demo.Viewport, degree int) (*RegressionResult, error) {
	if _, err := s.store.SetViewport(ctx, v); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, degree)
}
