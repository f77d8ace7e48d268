package roc

import (
	"sort"

	"statviz/domain/demo"
)

// ROCAndAUC computes the ROC curve and its area by an implicit threshold
// sweep: samples are processed in descending score order, each one moving the
// running (fpr, tpr) point, and the area accumulates by the trapezoidal rule.
//
// With only one class present no curve exists; the diagonal chance line and
// AUC 0.5 are returned instead of propagating NaN.
func ROCAndAUC(labels []int, scores []float64) demo.ROCCurve {
	totalPos, totalNeg := 0, 0
	for _, l := range labels {
		if l == 1 {
			totalPos++
		} else {
			totalNeg++
		}
	}

	if totalPos == 0 || totalNeg == 0 {
		return demo.ROCCurve{
			Points: []demo.ROCPoint{{FPR: 0, TPR: 0}, {FPR: 1, TPR: 1}},
			AUC:    0.5,
		}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	points := make([]demo.ROCPoint, 0, len(order)+1)
	points = append(points, demo.ROCPoint{FPR: 0, TPR: 0})

	auc := 0.0
	tp, fp := 0, 0
	prev := demo.ROCPoint{}
	for _, idx := range order {
		if labels[idx] == 1 {
			tp++
		} else {
			fp++
		}
		pt := demo.ROCPoint{
			FPR: float64(fp) / float64(totalNeg),
			TPR: float64(tp) / float64(totalPos),
		}
		auc += (pt.FPR - prev.FPR) * (pt.TPR + prev.TPR) / 2
		points = append(points, pt)
		prev = pt
	}

	return demo.ROCCurve{Points: points, AUC: auc}
}
