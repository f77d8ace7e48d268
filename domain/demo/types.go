package demo

// Sample is a 2D point with a binary class label.
// Labels are restricted to {0, 1}; anything else is rejected at fit time.
type Sample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label int     `json:"label"`
}

// Point is an unlabeled 2D point used by the regression demo.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport describes the visible axis ranges of a chart panel.
type Viewport struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// ConfusionCounts holds the four outcome counts at a fixed decision threshold.
type ConfusionCounts struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

// Total returns the sum of all four counts.
func (c ConfusionCounts) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Valid reports whether every count is non-negative.
func (c ConfusionCounts) Valid() bool {
	return c.TP >= 0 && c.FP >= 0 && c.TN >= 0 && c.FN >= 0
}

// RateSet holds the derived classification rates for a ConfusionCounts.
// Every rate resolves to 0 when its denominator is 0.
type RateSet struct {
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
	Specificity float64 `json:"specificity"`
	F1          float64 `json:"f1"`
	Accuracy    float64 `json:"accuracy"`
}

// ROCPoint is one point on a ROC curve.
type ROCPoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

// ROCCurve is an ordered ROC point sequence with its area.
// Points are non-decreasing in both coordinates and start at (0,0).
type ROCCurve struct {
	Points []ROCPoint `json:"points"`
	AUC    float64    `json:"auc"`
}

// RegressionStats holds residual statistics for a fitted polynomial.
type RegressionStats struct {
	R2         float64   `json:"r2"`
	AdjustedR2 float64   `json:"adjusted_r2"`
	MSE        float64   `json:"mse"`
	RMSE       float64   `json:"rmse"`
	MAE        float64   `json:"mae"`
	Residuals  []float64 `json:"residuals"`
}

// BandPoint is one vertical slice of a confidence band.
type BandPoint struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// MaxWaveComponents bounds how many components a composite signal may carry.
const MaxWaveComponents = 4

// WaveComponent describes one sine term of a composite signal.
type WaveComponent struct {
	Frequency    float64 `json:"frequency"`
	Amplitude    float64 `json:"amplitude"`
	PhaseDegrees float64 `json:"phase_degrees"`
	Enabled      bool    `json:"enabled"`
}

// Spectrum is the single-sided frequency-domain view of a signal.
// Bin k corresponds to frequency k * FreqResolution.
type Spectrum struct {
	Magnitudes     []float64 `json:"magnitudes"`
	PhasesDeg      []float64 `json:"phases_deg"`
	FreqResolution float64   `json:"freq_resolution"`
}
