package bayes

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"statviz/domain/demo"
	"statviz/internal/errors"
)

// varianceFloor keeps per-feature variances away from zero so the Gaussian
// density never divides by zero on constant features.
const varianceFloor = 1e-9

// ClassStats holds the fitted parameters for one class.
type ClassStats struct {
	Prior    float64    `json:"prior"`
	Mean     [2]float64 `json:"mean"`
	Variance [2]float64 `json:"variance"`
}

// Model is a fitted two-class Gaussian Naive Bayes classifier.
// Immutable after Fit; a re-fit replaces the model wholesale.
type Model struct {
	Classes [2]ClassStats `json:"classes"`
}

// Fit estimates per-class priors, feature means, and population variances
// from labeled samples. Labels must be exactly {0, 1}; a class with zero
// members is a coded error rather than a NaN-producing degenerate fit.
func Fit(samples []demo.Sample) (*Model, error) {
	if len(samples) == 0 {
		return nil, errors.InsufficientData("no samples to fit")
	}

	var counts [2]int
	var sums [2][2]float64
	for _, s := range samples {
		if s.Label != 0 && s.Label != 1 {
			return nil, errors.InvalidInput("labels must be 0 or 1")
		}
		counts[s.Label]++
		sums[s.Label][0] += s.X
		sums[s.Label][1] += s.Y
	}
	if counts[0] == 0 || counts[1] == 0 {
		return nil, errors.DegenerateClass("each class needs at least one sample")
	}

	var m Model
	for c := 0; c < 2; c++ {
		n := float64(counts[c])
		m.Classes[c].Prior = n / float64(len(samples))
		m.Classes[c].Mean[0] = sums[c][0] / n
		m.Classes[c].Mean[1] = sums[c][1] / n
	}

	var sqSums [2][2]float64
	for _, s := range samples {
		dx := s.X - m.Classes[s.Label].Mean[0]
		dy := s.Y - m.Classes[s.Label].Mean[1]
		sqSums[s.Label][0] += dx * dx
		sqSums[s.Label][1] += dy * dy
	}
	for c := 0; c < 2; c++ {
		n := float64(counts[c])
		m.Classes[c].Variance[0] = math.Max(sqSums[c][0]/n, varianceFloor)
		m.Classes[c].Variance[1] = math.Max(sqSums[c][1]/n, varianceFloor)
	}

	return &m, nil
}

// PredictProbability returns, for each point, the posterior probability of
// the positive class. Log-posteriors are normalized with the log-sum-exp
// trick so extreme densities never overflow.
func (m *Model) PredictProbability(points []demo.Point) []float64 {
	probs := make([]float64, len(points))
	for i, p := range points {
		var logPost [2]float64
		for c := 0; c < 2; c++ {
			cs := m.Classes[c]
			nx := distuv.Normal{Mu: cs.Mean[0], Sigma: math.Sqrt(cs.Variance[0])}
			ny := distuv.Normal{Mu: cs.Mean[1], Sigma: math.Sqrt(cs.Variance[1])}
			logPost[c] = math.Log(cs.Prior) + nx.LogProb(p.X) + ny.LogProb(p.Y)
		}

		maxLog := math.Max(logPost[0], logPost[1])
		e0 := math.Exp(logPost[0] - maxLog)
		e1 := math.Exp(logPost[1] - maxLog)
		probs[i] = e1 / (e0 + e1)
	}
	return probs
}

// PredictOne is a convenience wrapper for a single point.
func (m *Model) PredictOne(p demo.Point) float64 {
	return m.PredictProbability([]demo.Point{p})[0]
}
