package regression

import (
	"math"

	"github.com/montanaflynn/stats"

	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/internal/linalg"
)

// Model holds the fitted coefficient vector [β0..βd] for a degree-d polynomial.
type Model struct {
	Degree       int       `json:"degree"`
	Coefficients []float64 `json:"coefficients"`
}

// Fit solves the least-squares polynomial of the given degree through the
// points via the normal equations (VᵀV)β = Vᵀy, eliminated with partial
// pivoting. Returns a coded error (and no model) when fewer than degree+1
// points are available, so callers can show a "not enough data" state.
func Fit(xs, ys []float64, degree int) (*Model, error) {
	if degree < 1 || degree > 10 {
		return nil, errors.InvalidInput("degree must be in 1..10")
	}
	if len(xs) != len(ys) {
		return nil, errors.InvalidInput("x and y lengths differ")
	}
	if len(xs) < degree+1 {
		return nil, errors.InsufficientData("polynomial fit needs at least degree+1 points")
	}

	v := linalg.Vandermonde(xs, degree)
	vt := linalg.Transpose(v)
	vtv := linalg.MatMul(vt, v)
	vty := linalg.MatVec(vt, ys)

	coeffs, err := linalg.SolveGaussian(vtv, vty)
	if err != nil {
		return nil, errors.Wrap(err, "normal equations could not be solved")
	}

	return &Model{Degree: degree, Coefficients: coeffs}, nil
}

// Predict evaluates the polynomial at each x by Horner's method.
func (m *Model) Predict(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.PredictOne(x)
	}
	return out
}

// PredictOne evaluates the polynomial at a single x.
func (m *Model) PredictOne(x float64) float64 {
	y := 0.0
	for j := len(m.Coefficients) - 1; j >= 0; j-- {
		y = y*x + m.Coefficients[j]
	}
	return y
}

// Statistics computes residual diagnostics for a fit of the given degree.
// R² resolves to 0 when the targets have no variance; adjusted R² falls back
// to plain R² when the degrees of freedom run out.
func Statistics(yTrue, yPred []float64, degree int) demo.RegressionStats {
	n := len(yTrue)
	residuals := make([]float64, n)
	absResiduals := make([]float64, n)
	ssRes := 0.0
	for i := range yTrue {
		r := yTrue[i] - yPred[i]
		residuals[i] = r
		absResiduals[i] = math.Abs(r)
		ssRes += r * r
	}

	meanY, _ := stats.Mean(yTrue)
	ssTot := 0.0
	for _, y := range yTrue {
		d := y - meanY
		ssTot += d * d
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	adjR2 := r2
	if n > degree+1 {
		adjR2 = 1 - (1-r2)*float64(n-1)/float64(n-degree-1)
	}

	mse := ssRes / float64(n)
	mae, _ := stats.Mean(absResiduals)

	return demo.RegressionStats{
		R2:         r2,
		AdjustedR2: adjR2,
		MSE:        mse,
		RMSE:       math.Sqrt(mse),
		MAE:        mae,
		Residuals:  residuals,
	}
}

// ConfidenceBand returns an approximate ±2σ band around the fitted curve,
// with σ estimated from the residual sum of squares over n-degree-1 degrees
// of freedom. Not a true t-distribution interval.
func (m *Model) ConfidenceBand(xs []float64, residuals []float64) []demo.BandPoint {
	ssRes := 0.0
	for _, r := range residuals {
		ssRes += r * r
	}
	df := len(residuals) - m.Degree - 1
	if df < 1 {
		df = 1
	}
	sigma := math.Sqrt(ssRes / float64(df))

	band := make([]demo.BandPoint, len(xs))
	for i, x := range xs {
		y := m.PredictOne(x)
		band[i] = demo.BandPoint{Lower: y - 2*sigma, Upper: y + 2*sigma}
	}
	return band
}
