package spectral

import (
	"math"

	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/ports"
)

// GenerateSineWave samples amplitude·sin(2π·frequency·t + phase) at
// t = n/samplingRate for n = 0..numSamples-1.
func GenerateSineWave(frequency, amplitude, phaseDegrees, samplingRate float64, numSamples int) []float64 {
	phase := phaseDegrees * math.Pi / 180
	out := make([]float64, numSamples)
	for n := range out {
		t := float64(n) / samplingRate
		out[n] = amplitude * math.Sin(2*math.Pi*frequency*t+phase)
	}
	return out
}

// Composite sums the enabled wave components sample-wise, optionally adding
// independent Gaussian noise per sample. noise may be nil when noiseStdDev
// is zero.
func Composite(waves []demo.WaveComponent, numSamples int, samplingRate float64, noise ports.GaussianSource, noiseStdDev float64) ([]float64, error) {
	if len(waves) > demo.MaxWaveComponents {
		return nil, errors.InvalidInput("at most 4 wave components")
	}
	if numSamples <= 0 || samplingRate <= 0 {
		return nil, errors.InvalidInput("sample count and sampling rate must be positive")
	}
	for _, w := range waves {
		if w.Frequency < 0 || w.Amplitude < 0 {
			return nil, errors.InvalidInput("frequency and amplitude must be non-negative")
		}
	}

	signal := make([]float64, numSamples)
	for _, w := range waves {
		if !w.Enabled {
			continue
		}
		wave := GenerateSineWave(w.Frequency, w.Amplitude, w.PhaseDegrees, samplingRate, numSamples)
		for i := range signal {
			signal[i] += wave[i]
		}
	}

	if noiseStdDev > 0 && noise != nil {
		for i := range signal {
			signal[i] += noise.Sample(0, noiseStdDev)
		}
	}
	return signal, nil
}
