package testkit

import (
	"github.com/montanaflynn/stats"

	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/internal/rng"
	"statviz/internal/spectral"
)

// Kit generates the synthetic datasets the demo panels run on. All
// generation is seeded so a demo reloads to the same picture until the user
// changes a parameter.
type Kit struct {
	factory *rng.Factory
}

// NewKit creates a test kit.
func NewKit() *Kit {
	return &Kit{factory: rng.NewFactory()}
}

// GaussianClouds generates two offset Gaussian clouds of n samples each.
// Class 0 centers at (-separation/2, -separation/2), class 1 mirrors it.
func (k *Kit) GaussianClouds(seed int64, n int, separation, spread float64) ([]demo.Sample, error) {
	if n < 1 {
		return nil, errors.InvalidInput("cloud size must be at least 1")
	}
	if spread < 0 {
		return nil, errors.InvalidInput("spread must be non-negative")
	}

	src := k.factory.Stream(seed)
	offset := separation / 2
	samples := make([]demo.Sample, 0, 2*n)
	for i := 0; i < n; i++ {
		samples = append(samples, demo.Sample{
			X:     src.Sample(-offset, spread),
			Y:     src.Sample(-offset, spread),
			Label: 0,
		})
	}
	for i := 0; i < n; i++ {
		samples = append(samples, demo.Sample{
			X:     src.Sample(offset, spread),
			Y:     src.Sample(offset, spread),
			Label: 1,
		})
	}
	return samples, nil
}

// NoisyPolynomial samples a polynomial with coefficients [β0..βd] at n
// evenly spaced x values, adding Gaussian noise to each y.
func (k *Kit) NoisyPolynomial(seed int64, coeffs []float64, n int, xMin, xMax, noise float64) ([]demo.Point, error) {
	if len(coeffs) == 0 {
		return nil, errors.InvalidInput("at least one coefficient required")
	}
	if n < 2 || xMax <= xMin {
		return nil, errors.InvalidInput("need at least 2 points over a positive x range")
	}

	src := k.factory.Stream(seed)
	step := (xMax - xMin) / float64(n-1)
	points := make([]demo.Point, n)
	for i := 0; i < n; i++ {
		x := xMin + float64(i)*step
		y := 0.0
		for j := len(coeffs) - 1; j >= 0; j-- {
			y = y*x + coeffs[j]
		}
		points[i] = demo.Point{X: x, Y: y + src.Sample(0, noise)}
	}
	return points, nil
}

// TestSignal composes the given waves into a signal with optional noise.
func (k *Kit) TestSignal(seed int64, waves []demo.WaveComponent, numSamples int, samplingRate, noiseStdDev float64) ([]float64, error) {
	noise := k.factory.Stream(seed)
	return spectral.Composite(waves, numSamples, samplingRate, noise, noiseStdDev)
}

// Profile summarizes a numeric series for panel readouts.
type Profile struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ProfileSeries computes the summary statistics of a series.
func ProfileSeries(data []float64) Profile {
	mean, _ := stats.Mean(data)
	sd, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	return Profile{Mean: mean, StdDev: sd, Min: min, Max: max}
}
