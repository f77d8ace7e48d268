package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"statviz/domain/demo"
	"statviz/internal/config"
)

// Engine bundles the four demo services and can refresh every panel in one
// call, e.g. on startup or a global "regenerate" action. Each panel's
// computation is independent, so the refresh fans out concurrently.
type Engine struct {
	Classifier *ClassifierService
	Confusion  *ConfusionService
	Regression *RegressionService
	Spectrum   *SpectrumService
}

// NewEngine creates the engine over the four services.
func NewEngine(cl *ClassifierService, cf *ConfusionService, rg *RegressionService, sp *SpectrumService) *Engine {
	return &Engine{Classifier: cl, Confusion: cf, Regression: rg, Spectrum: sp}
}

// Panels is the combined state of all four demo panels.
type Panels struct {
	Classifier *ClassifierResult `json:"classifier"`
	Confusion  *ConfusionResult  `json:"confusion"`
	Regression *RegressionResult `json:"regression"`
	Spectrum   *SpectrumResult   `json:"spectrum"`
}

// RefreshAll recomputes every panel from the configured defaults.
func (e *Engine) RefreshAll(ctx context.Context, cfg config.DemoConfig) (*Panels, error) {
	var panels Panels

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := e.Classifier.Run(ctx, ClassifierRequest{
			Seed:        cfg.DemoPanelSeed,
			SampleCount: cfg.SampleCount,
			Separation:  cfg.Separation,
			Spread:      cfg.Spread,
		})
		panels.Classifier = res
		return err
	})
	g.Go(func() error {
		quarter := cfg.ConfusionSum / 4
		res, err := e.Confusion.Run(ctx, ConfusionRequest{
			Counts: demo.ConfusionCounts{TP: quarter, FP: quarter, TN: quarter, FN: cfg.ConfusionSum - 3*quarter},
		})
		panels.Confusion = res
		return err
	})
	g.Go(func() error {
		res, err := e.Regression.Recompute(ctx, 2)
		panels.Regression = res
		return err
	})
	g.Go(func() error {
		res, err := e.Spectrum.Run(ctx, SpectrumRequest{
			Waves: []demo.WaveComponent{
				{Frequency: 4, Amplitude: 10, Enabled: true},
				{Frequency: 12, Amplitude: 3, PhaseDegrees: 45, Enabled: true},
			},
			NumSamples:   cfg.FFTSize,
			SamplingRate: cfg.SamplingRate,
			NoiseStdDev:  cfg.NoiseStdDev,
			Seed:         cfg.DemoPanelSeed,
		})
		panels.Spectrum = res
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &panels, nil
}
