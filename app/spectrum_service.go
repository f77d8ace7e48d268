package app

import (
	"context"

	"statviz/domain/core"
	"statviz/domain/demo"
	"statviz/internal/spectral"
	"statviz/internal/testkit"
)

// SpectrumService drives the Fourier decomposition panel: compose up to four
// sine waves, transform, and fold into single-sided spectra with derived
// power metrics.
type SpectrumService struct {
	kit         *testkit.Kit
	transformer *spectral.Transformer
}

// NewSpectrumService creates the spectral demo service.
func NewSpectrumService(kit *testkit.Kit, transformer *spectral.Transformer) *SpectrumService {
	return &SpectrumService{kit: kit, transformer: transformer}
}

// SpectrumRequest holds the panel's adjustable parameters.
type SpectrumRequest struct {
	Waves        []demo.WaveComponent `json:"waves"`
	NumSamples   int                  `json:"num_samples"`
	SamplingRate float64              `json:"sampling_rate"`
	NoiseStdDev  float64              `json:"noise_std_dev"`
	Seed         int64                `json:"seed"`
}

// SpectrumResult is the recomputed panel state.
type SpectrumResult struct {
	RunID          core.RunID      `json:"run_id"`
	Signal         []float64       `json:"signal"`
	Spectrum       demo.Spectrum   `json:"spectrum"`
	Nyquist        float64         `json:"nyquist"`
	FreqResolution float64         `json:"freq_resolution"`
	TotalPower     float64         `json:"total_power"`
	RMSAmplitude   float64         `json:"rms_amplitude"`
	SignalProfile  testkit.Profile `json:"signal_profile"`
}

// Run composes the signal and recomputes the whole panel.
func (s *SpectrumService) Run(ctx context.Context, req SpectrumRequest) (*SpectrumResult, error) {
	signal, err := s.kit.TestSignal(req.Seed, req.Waves, req.NumSamples, req.SamplingRate, req.NoiseStdDev)
	if err != nil {
		return nil, err
	}

	spectrum := spectral.Analyze(s.transformer, signal, req.SamplingRate)

	return &SpectrumResult{
		RunID:          core.NewRunID(),
		Signal:         signal,
		Spectrum:       spectrum,
		Nyquist:        spectral.Nyquist(req.SamplingRate),
		FreqResolution: spectrum.FreqResolution,
		TotalPower:     spectral.TotalPower(spectrum.Magnitudes, len(signal)),
		RMSAmplitude:   spectral.RMSAmplitude(signal),
		SignalProfile:  testkit.ProfileSeries(signal),
	}, nil
}
