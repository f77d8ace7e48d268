package app

import (
	"context"

	"statviz/domain/core"
	"statviz/domain/demo"
	"statviz/internal/bayes"
	"statviz/internal/errors"
	"statviz/internal/roc"
	"statviz/internal/testkit"
)

// decisionThreshold is the fixed cut used for the classifier panel's
// confusion matrix.
const decisionThreshold = 0.5

// ClassifierService drives the Gaussian Naive Bayes demo panel: generate two
// clouds, fit, score, and derive every downstream metric in one pass.
type ClassifierService struct {
	kit *testkit.Kit
}

// NewClassifierService creates a classifier demo service.
func NewClassifierService(kit *testkit.Kit) *ClassifierService {
	return &ClassifierService{kit: kit}
}

// ClassifierRequest holds the panel's adjustable parameters.
type ClassifierRequest struct {
	Seed        int64   `json:"seed"`
	SampleCount int     `json:"sample_count"` // per class
	Separation  float64 `json:"separation"`
	Spread      float64 `json:"spread"`
}

// ClassifierResult is the full recomputed state of the panel.
type ClassifierResult struct {
	RunID   core.RunID           `json:"run_id"`
	Samples []demo.Sample        `json:"samples"`
	Model   *bayes.Model         `json:"model"`
	Scores  []float64            `json:"scores"`
	Counts  demo.ConfusionCounts `json:"counts"`
	Rates   demo.RateSet         `json:"rates"`
	ROC     demo.ROCCurve        `json:"roc"`
}

// Run regenerates the dataset and recomputes the whole panel. The result
// replaces any prior derived state wholesale.
func (s *ClassifierService) Run(ctx context.Context, req ClassifierRequest) (*ClassifierResult, error) {
	if req.SampleCount < 2 {
		return nil, errors.InvalidInput("sample count must be at least 2 per class")
	}

	samples, err := s.kit.GaussianClouds(req.Seed, req.SampleCount, req.Separation, req.Spread)
	if err != nil {
		return nil, err
	}

	model, err := bayes.Fit(samples)
	if err != nil {
		return nil, err
	}

	points := make([]demo.Point, len(samples))
	labels := make([]int, len(samples))
	for i, sm := range samples {
		points[i] = demo.Point{X: sm.X, Y: sm.Y}
		labels[i] = sm.Label
	}
	scores := model.PredictProbability(points)

	counts := roc.ConfusionMatrix(labels, scores, decisionThreshold)

	return &ClassifierResult{
		RunID:   core.NewRunID(),
		Samples: samples,
		Model:   model,
		Scores:  scores,
		Counts:  counts,
		Rates:   roc.Rates(counts),
		ROC:     roc.ROCAndAUC(labels, scores),
	}, nil
}
