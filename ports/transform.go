package ports

// FrequencyTransformer converts a real time-domain signal to frequency-domain
// complex coefficients, returned as parallel real and imaginary slices.
//
// There is one transform capability with two implementing strategies (radix-2
// FFT for power-of-two lengths, direct DFT otherwise); the strategy is chosen
// by a pure predicate on the input length, never at the call site.
type FrequencyTransformer interface {
	Transform(signal []float64) (re, im []float64)
}
