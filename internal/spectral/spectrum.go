package spectral

import (
	"math"

	"statviz/domain/demo"
)

// MagnitudeSpectrum folds the complex coefficients into a single-sided
// magnitude spectrum over bins k = 0..N/2.
//
// Interior bins are doubled (2·|X[k]|/N) to absorb their mirrored
// negative-frequency energy; DC and, for even N, the Nyquist bin have no
// mirror counterpart and stay at |X[k]|/N.
func MagnitudeSpectrum(re, im []float64) []float64 {
	n := len(re)
	if n == 0 {
		return nil
	}
	half := n / 2
	mags := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		mag := math.Hypot(re[k], im[k]) / float64(n)
		if k != 0 && !(n%2 == 0 && k == half) {
			mag *= 2
		}
		mags[k] = mag
	}
	return mags
}

// PhaseSpectrum returns atan2(im[k], re[k]) in degrees over bins 0..N/2.
func PhaseSpectrum(re, im []float64) []float64 {
	n := len(re)
	if n == 0 {
		return nil
	}
	half := n / 2
	phases := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		phases[k] = math.Atan2(im[k], re[k]) * 180 / math.Pi
	}
	return phases
}

// Analyze runs the full transform-and-fold pipeline for a signal.
func Analyze(t *Transformer, signal []float64, samplingRate float64) demo.Spectrum {
	re, im := t.Transform(signal)
	return demo.Spectrum{
		Magnitudes:     MagnitudeSpectrum(re, im),
		PhasesDeg:      PhaseSpectrum(re, im),
		FreqResolution: FrequencyResolution(samplingRate, len(signal)),
	}
}

// Nyquist returns the highest representable frequency, samplingRate/2.
func Nyquist(samplingRate float64) float64 {
	return samplingRate / 2
}

// FrequencyResolution returns the bin width samplingRate/numSamples.
func FrequencyResolution(samplingRate float64, numSamples int) float64 {
	if numSamples == 0 {
		return 0
	}
	return samplingRate / float64(numSamples)
}

// TotalPower approximates the signal power from the single-sided magnitude
// spectrum (Parseval): interior bins carry half their squared magnitude
// because the doubling already folded in the mirror energy.
func TotalPower(mags []float64, n int) float64 {
	power := 0.0
	half := n / 2
	for k, mag := range mags {
		factor := 0.5
		if k == 0 || (n%2 == 0 && k == half) {
			factor = 1
		}
		power += factor * mag * mag
	}
	return power
}

// RMSAmplitude returns √(mean(signal²)).
func RMSAmplitude(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range signal {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(signal)))
}
