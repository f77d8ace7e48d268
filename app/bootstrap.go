package app

import (
	"statviz/adapters/memstore"
	"statviz/domain/demo"
	"statviz/internal/config"
	"statviz/internal/rng"
	"statviz/internal/spectral"
	"statviz/internal/testkit"
)

// Bootstrap wires the default engine: seeded demo datasets, an in-memory
// point store pre-filled with a noisy quadratic, and the unseeded sampler
// for inverse-mode score simulation.
func Bootstrap(cfg *config.Config) (*Engine, error) {
	kit := testkit.NewKit()

	points, err := kit.NoisyPolynomial(cfg.Demo.DemoPanelSeed, []float64{1, 0.5, 0.8}, 25, -4, 4, 1.2)
	if err != nil {
		return nil, err
	}
	store := memstore.NewPointStore(points, demo.Viewport{XMin: -5, XMax: 5, YMin: -5, YMax: 20})

	return NewEngine(
		NewClassifierService(kit),
		NewConfusionService(rng.NewBoxMuller()),
		NewRegressionService(store),
		NewSpectrumService(kit, spectral.NewTransformer()),
	), nil
}
