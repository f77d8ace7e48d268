package spectral

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// strategy converts a real signal to complex frequency coefficients.
type strategy func(signal []float64) []complex128

// Transformer is the single frequency-transform capability with two
// implementing strategies: radix-2 FFT for power-of-two lengths and the
// direct DFT otherwise. Both produce numerically equivalent coefficients
// for power-of-two sizes.
type Transformer struct{}

// NewTransformer creates the dual-path transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts a time-domain signal to frequency-domain coefficients,
// returned as parallel real and imaginary slices.
func (t *Transformer) Transform(signal []float64) (re, im []float64) {
	coeffs := selectStrategy(len(signal))(signal)
	re = make([]float64, len(coeffs))
	im = make([]float64, len(coeffs))
	for i, c := range coeffs {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// selectStrategy is the pure predicate choosing the transform path.
func selectStrategy(n int) strategy {
	if isPowerOfTwo(n) {
		return fft
	}
	return dft
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fft is the iterative radix-2 Cooley-Tukey transform: bit-reversal
// permutation followed by log2(N) butterfly stages.
func fft(signal []float64) []complex128 {
	n := len(signal)
	x := make([]complex128, n)

	shift := bits.UintSize - uint(bits.Len(uint(n-1)))
	for i, v := range signal {
		x[bits.Reverse(uint(i))>>shift] = complex(v, 0)
	}

	for step := 2; step <= n; step <<= 1 {
		half := step / 2
		for start := 0; start < n; start += step {
			for k := 0; k < half; k++ {
				w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(step)))
				a := x[start+k]
				b := w * x[start+k+half]
				x[start+k] = a + b
				x[start+k+half] = a - b
			}
		}
	}
	return x
}

// dft is the direct O(N²) summation fallback for arbitrary lengths.
func dft(signal []float64) []complex128 {
	n := len(signal)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		sum := complex(0, 0)
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += complex(signal[t]*math.Cos(angle), signal[t]*math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}
