package roc

import (
	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/ports"
)

// ConfusionMatrix counts the four classification outcomes at the given
// threshold. A score >= threshold is classified positive.
func ConfusionMatrix(labels []int, scores []float64, threshold float64) demo.ConfusionCounts {
	var c demo.ConfusionCounts
	for i, label := range labels {
		predicted := scores[i] >= threshold
		switch {
		case predicted && label == 1:
			c.TP++
		case predicted && label == 0:
			c.FP++
		case !predicted && label == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return c
}

// Rates derives the standard classification rates from counts.
// Every rate with a zero denominator resolves to 0.
func Rates(c demo.ConfusionCounts) demo.RateSet {
	var r demo.RateSet
	if c.TP+c.FP > 0 {
		r.Precision = float64(c.TP) / float64(c.TP+c.FP)
	}
	if c.TP+c.FN > 0 {
		r.Recall = float64(c.TP) / float64(c.TP+c.FN)
	}
	if c.TN+c.FP > 0 {
		r.Specificity = float64(c.TN) / float64(c.TN+c.FP)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	if total := c.Total(); total > 0 {
		r.Accuracy = float64(c.TP+c.TN) / float64(total)
	}
	return r
}

// SimulateScoresFromCounts reconstructs a plausible score distribution
// consistent with the target confusion matrix at threshold 0.5, for
// inverse-mode visualization.
//
// The reconstruction is illustrative only: many score distributions produce
// the same counts, so callers must not treat the result as a statistical
// inverse of the ROC computation.
func SimulateScoresFromCounts(c demo.ConfusionCounts, src ports.GaussianSource) (scores []float64, labels []int, err error) {
	if !c.Valid() {
		return nil, nil, errors.InvalidInput("confusion counts must be non-negative")
	}

	const scoreStdDev = 0.15

	tpr, tnr := 0.5, 0.5
	if c.TP+c.FN > 0 {
		tpr = float64(c.TP) / float64(c.TP+c.FN)
	}
	if c.TN+c.FP > 0 {
		tnr = float64(c.TN) / float64(c.TN+c.FP)
	}

	meanPositive := 0.5 + (tpr - 0.5)
	meanNegative := 0.5 - (tnr - 0.5)

	total := c.Total()
	scores = make([]float64, 0, total)
	labels = make([]int, 0, total)

	for i := 0; i < c.TN+c.FP; i++ {
		scores = append(scores, src.Sample(meanNegative, scoreStdDev))
		labels = append(labels, 0)
	}
	for i := 0; i < c.TP+c.FN; i++ {
		scores = append(scores, src.Sample(meanPositive, scoreStdDev))
		labels = append(labels, 1)
	}
	return scores, labels, nil
}
