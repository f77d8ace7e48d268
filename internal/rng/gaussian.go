package rng

import (
	"math"
	"math/rand"

	"statviz/ports"
)

// uniformSource abstracts the uniform variate supply so the seeded and
// unseeded samplers share one Box-Muller implementation.
type uniformSource interface {
	Float64() float64
}

// platformSource draws from the package-level math/rand generator.
type platformSource struct{}

func (platformSource) Float64() float64 { return rand.Float64() }

// BoxMuller samples a normal distribution via the Box-Muller transform.
type BoxMuller struct {
	src uniformSource
}

// NewBoxMuller creates the unseeded sampler backed by the platform's default
// uniform source. Reproducibility across runs is not guaranteed.
func NewBoxMuller() *BoxMuller {
	return &BoxMuller{src: platformSource{}}
}

// NewSeededBoxMuller creates a deterministic sampler for the given seed.
func NewSeededBoxMuller(seed int64) *BoxMuller {
	return &BoxMuller{src: rand.New(rand.NewSource(seed))}
}

// Sample draws one value from N(mean, stdDev²).
//
// Uses two independent uniforms in (0,1); a draw of exactly 0 is resampled
// so log(u1) stays finite.
func (b *BoxMuller) Sample(mean, stdDev float64) float64 {
	u1 := b.src.Float64()
	for u1 == 0 {
		u1 = b.src.Float64()
	}
	u2 := b.src.Float64()
	for u2 == 0 {
		u2 = b.src.Float64()
	}

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z
}

// Factory creates seeded Gaussian streams.
type Factory struct{}

// NewFactory creates a stream factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Stream returns a deterministic Gaussian source for the given seed.
func (f *Factory) Stream(seed int64) ports.GaussianSource {
	return NewSeededBoxMuller(seed)
}

var (
	_ ports.GaussianSource        = (*BoxMuller)(nil)
	_ ports.SeededGaussianFactory = (*Factory)(nil)
)
