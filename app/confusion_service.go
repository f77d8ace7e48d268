package app

import (
	"context"

	"statviz/domain/core"
	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/internal/roc"
	"statviz/ports"
)

// ConfusionService drives the inverse-mode panel: the confusion counts are
// the primary input and a plausible score distribution is reconstructed for
// visualization.
type ConfusionService struct {
	gauss ports.GaussianSource
}

// NewConfusionService creates the inverse-mode service.
func NewConfusionService(gauss ports.GaussianSource) *ConfusionService {
	return &ConfusionService{gauss: gauss}
}

// ConfusionRequest carries the target counts.
type ConfusionRequest struct {
	Counts demo.ConfusionCounts `json:"counts"`
}

// ConfusionResult is the recomputed inverse-mode panel state. The ROC curve
// here is illustrative: it reflects the simulated scores, not a unique
// inverse of the input counts.
type ConfusionResult struct {
	RunID  core.RunID           `json:"run_id"`
	Counts demo.ConfusionCounts `json:"counts"`
	Rates  demo.RateSet         `json:"rates"`
	Scores []float64            `json:"scores"`
	Labels []int                `json:"labels"`
	ROC    demo.ROCCurve        `json:"roc"`
}

// Run derives rates from the counts and simulates a matching score cloud.
func (s *ConfusionService) Run(ctx context.Context, req ConfusionRequest) (*ConfusionResult, error) {
	if !req.Counts.Valid() {
		return nil, errors.InvalidInput("confusion counts must be non-negative")
	}
	if req.Counts.Total() == 0 {
		return nil, errors.InsufficientData("confusion counts sum to zero")
	}

	scores, labels, err := roc.SimulateScoresFromCounts(req.Counts, s.gauss)
	if err != nil {
		return nil, err
	}

	return &ConfusionResult{
		RunID:  core.NewRunID(),
		Counts: req.Counts,
		Rates:  roc.Rates(req.Counts),
		Scores: scores,
		Labels: labels,
		ROC:    roc.ROCAndAUC(labels, scores),
	}, nil
}

// AdjustRequest is one count edit against the pinned total.
type AdjustRequest struct {
	Counts   demo.ConfusionCounts `json:"counts"`
	Field    roc.Field            `json:"field"`
	NewValue int                  `json:"new_value"`
	Locked   []roc.Field          `json:"locked"`
	Total    int                  `json:"total"`
}

// Adjust applies a total-preserving count edit. On rejection the input
// counts come back unchanged along with the error, so the caller can keep
// its prior state verbatim.
func (s *ConfusionService) Adjust(ctx context.Context, req AdjustRequest) (demo.ConfusionCounts, error) {
	locked := make(map[roc.Field]bool, len(req.Locked))
	for _, f := range req.Locked {
		locked[f] = true
	}
	return roc.AdjustCountsToTotal(req.Counts, req.Field, req.NewValue, locked, req.Total)
}
