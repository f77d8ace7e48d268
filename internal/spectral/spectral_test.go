package spectral

import (
	"math"
	"testing"

	"statviz/domain/demo"
	"statviz/internal/rng"
)

func TestTransform_FFTMatchesDFT(t *testing.T) {
	src := rng.NewSeededBoxMuller(11)

	for _, n := range []int{8, 64, 256} {
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = src.Sample(0, 1)
		}

		fftCoeffs := fft(signal)
		dftCoeffs := dft(signal)

		for k := 0; k < n; k++ {
			if math.Abs(real(fftCoeffs[k])-real(dftCoeffs[k])) > 1e-9 ||
				math.Abs(imag(fftCoeffs[k])-imag(dftCoeffs[k])) > 1e-9 {
				t.Fatalf("n=%d bin %d: fft %v, dft %v", n, k, fftCoeffs[k], dftCoeffs[k])
			}
		}
	}
}

func TestTransform_StrategyDispatch(t *testing.T) {
	if !isPowerOfTwo(256) || isPowerOfTwo(100) || isPowerOfTwo(0) {
		t.Fatal("power-of-two predicate is wrong")
	}

	// A non-power-of-two length must still transform correctly through the
	// DFT fallback: a 5 Hz tone over 100 samples at 100 Hz lands in bin 5.
	tr := NewTransformer()
	signal := GenerateSineWave(5, 2, 0, 100, 100)
	re, im := tr.Transform(signal)
	mags := MagnitudeSpectrum(re, im)

	if math.Abs(mags[5]-2) > 1e-9 {
		t.Errorf("bin 5 magnitude %v, want 2", mags[5])
	}
}

func TestMagnitudeSpectrum_PeakAtToneFrequency(t *testing.T) {
	// 4 Hz tone, amplitude 10, 256 samples at 256 Hz: bin k = 4 Hz exactly.
	signal := GenerateSineWave(4, 10, 0, 256, 256)

	tr := NewTransformer()
	re, im := tr.Transform(signal)
	mags := MagnitudeSpectrum(re, im)

	if len(mags) != 129 {
		t.Fatalf("expected 129 bins, got %d", len(mags))
	}
	if math.Abs(mags[4]-10) > 1e-9 {
		t.Errorf("peak magnitude %v, want 10", mags[4])
	}
	for k, m := range mags {
		if k == 4 {
			continue
		}
		if m > 1e-9 {
			t.Errorf("bin %d should be near zero, got %v", k, m)
		}
	}
}

func TestPhaseSpectrum_SineQuadrature(t *testing.T) {
	// sin(2πft) = cos(2πft - 90°), so the tone bin's phase is -90°.
	signal := GenerateSineWave(8, 1, 0, 64, 64)

	tr := NewTransformer()
	re, im := tr.Transform(signal)
	phases := PhaseSpectrum(re, im)

	if math.Abs(phases[8]+90) > 1e-6 {
		t.Errorf("tone phase %v°, want -90°", phases[8])
	}
}

func TestTotalPower_Parseval(t *testing.T) {
	waves := []demo.WaveComponent{
		{Frequency: 4, Amplitude: 3, Enabled: true},
		{Frequency: 10, Amplitude: 1.5, PhaseDegrees: 30, Enabled: true},
		{Frequency: 25, Amplitude: 0.5, PhaseDegrees: 120, Enabled: true},
	}

	signal, err := Composite(waves, 256, 256, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr := NewTransformer()
	re, im := tr.Transform(signal)
	mags := MagnitudeSpectrum(re, im)

	freqPower := TotalPower(mags, len(signal))

	timePower := 0.0
	for _, v := range signal {
		timePower += v * v
	}
	timePower /= float64(len(signal))

	if math.Abs(freqPower-timePower) > 1e-9 {
		t.Errorf("frequency-domain power %v, time-domain power %v", freqPower, timePower)
	}
}

func TestComposite_Validation(t *testing.T) {
	tooMany := make([]demo.WaveComponent, 5)
	if _, err := Composite(tooMany, 64, 64, nil, 0); err == nil {
		t.Error("more than 4 components should be rejected")
	}

	if _, err := Composite(nil, 0, 64, nil, 0); err == nil {
		t.Error("zero samples should be rejected")
	}

	bad := []demo.WaveComponent{{Frequency: -1, Amplitude: 1, Enabled: true}}
	if _, err := Composite(bad, 64, 64, nil, 0); err == nil {
		t.Error("negative frequency should be rejected")
	}
}

func TestComposite_DisabledWavesExcluded(t *testing.T) {
	waves := []demo.WaveComponent{
		{Frequency: 4, Amplitude: 10, Enabled: false},
	}
	signal, err := Composite(waves, 64, 64, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range signal {
		if v != 0 {
			t.Fatalf("sample %d should be zero for disabled waves, got %v", i, v)
		}
	}
}

func TestComposite_NoiseChangesSignal(t *testing.T) {
	waves := []demo.WaveComponent{{Frequency: 2, Amplitude: 1, Enabled: true}}

	clean, _ := Composite(waves, 128, 128, nil, 0)
	noisy, err := Composite(waves, 128, 128, rng.NewSeededBoxMuller(3), 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := true
	for i := range clean {
		if clean[i] != noisy[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("noise should perturb the composite signal")
	}
}

func TestDerivedMetrics(t *testing.T) {
	if Nyquist(256) != 128 {
		t.Error("nyquist of 256 Hz should be 128 Hz")
	}
	if FrequencyResolution(256, 512) != 0.5 {
		t.Error("resolution of 256 Hz over 512 samples should be 0.5 Hz")
	}

	// RMS of A·sin is A/√2 over whole periods
	signal := GenerateSineWave(4, 2, 0, 256, 256)
	want := 2 / math.Sqrt2
	if got := RMSAmplitude(signal); math.Abs(got-want) > 1e-9 {
		t.Errorf("RMS %v, want %v", got, want)
	}
}
