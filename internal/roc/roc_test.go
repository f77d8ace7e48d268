package roc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statviz/domain/demo"
	"statviz/internal/errors"
	"statviz/internal/rng"
)

func TestConfusionMatrix_Identity(t *testing.T) {
	labels := []int{1, 1, 0, 0, 1, 0, 0, 1}
	scores := []float64{0.9, 0.4, 0.6, 0.1, 0.7, 0.5, 0.2, 0.55}

	for _, threshold := range []float64{0.0, 0.3, 0.5, 0.8, 1.1} {
		c := ConfusionMatrix(labels, scores, threshold)
		assert.Equal(t, len(labels), c.Total(), "threshold %.2f", threshold)
		assert.True(t, c.Valid())
	}
}

func TestRates_F1Consistency(t *testing.T) {
	cases := []demo.ConfusionCounts{
		{TP: 70, FP: 20, TN: 80, FN: 30},
		{TP: 1, FP: 99, TN: 0, FN: 0},
		{TP: 50, FP: 0, TN: 50, FN: 0},
	}
	for _, c := range cases {
		r := Rates(c)
		if c.TP+c.FP > 0 && c.TP+c.FN > 0 {
			want := 2 * float64(c.TP) / float64(2*c.TP+c.FP+c.FN)
			assert.InDelta(t, want, r.F1, 1e-12, "counts %+v", c)
		}
	}
}

func TestRates_ZeroDenominators(t *testing.T) {
	r := Rates(demo.ConfusionCounts{})
	assert.Zero(t, r.Precision)
	assert.Zero(t, r.Recall)
	assert.Zero(t, r.Specificity)
	assert.Zero(t, r.F1)
	assert.Zero(t, r.Accuracy)
}

func TestROCAndAUC_Monotonic(t *testing.T) {
	labels := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 0}
	scores := []float64{0.8, 0.3, 0.65, 0.9, 0.45, 0.2, 0.5, 0.6, 0.75, 0.35}

	curve := ROCAndAUC(labels, scores)

	require.NotEmpty(t, curve.Points)
	assert.Equal(t, demo.ROCPoint{FPR: 0, TPR: 0}, curve.Points[0])

	last := curve.Points[len(curve.Points)-1]
	assert.InDelta(t, 1.0, last.FPR, 1e-12)
	assert.InDelta(t, 1.0, last.TPR, 1e-12)

	for i := 1; i < len(curve.Points); i++ {
		assert.GreaterOrEqual(t, curve.Points[i].FPR, curve.Points[i-1].FPR)
		assert.GreaterOrEqual(t, curve.Points[i].TPR, curve.Points[i-1].TPR)
	}

	assert.GreaterOrEqual(t, curve.AUC, 0.0)
	assert.LessOrEqual(t, curve.AUC, 1.0)
}

func TestROCAndAUC_PerfectSeparation(t *testing.T) {
	labels := []int{1, 1, 1, 0, 0, 0}
	scores := []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1}

	curve := ROCAndAUC(labels, scores)
	assert.InDelta(t, 1.0, curve.AUC, 1e-12)
}

func TestROCAndAUC_DegenerateSingleClass(t *testing.T) {
	curve := ROCAndAUC([]int{1, 1, 1}, []float64{0.2, 0.5, 0.8})
	assert.InDelta(t, 0.5, curve.AUC, 1e-12)
	require.Len(t, curve.Points, 2)
	assert.Equal(t, demo.ROCPoint{FPR: 0, TPR: 0}, curve.Points[0])
	assert.Equal(t, demo.ROCPoint{FPR: 1, TPR: 1}, curve.Points[1])

	curve = ROCAndAUC([]int{0, 0}, []float64{0.4, 0.6})
	assert.InDelta(t, 0.5, curve.AUC, 1e-12)
}

func TestAdjustCountsToTotal_Redistributes(t *testing.T) {
	counts := demo.ConfusionCounts{TP: 70, FP: 20, TN: 80, FN: 30} // total 200

	got, err := AdjustCountsToTotal(counts, FieldTP, 100, map[Field]bool{FieldFN: true}, 200)
	require.NoError(t, err)

	assert.Equal(t, 200, got.Total())
	assert.Equal(t, 100, got.TP)
	assert.Equal(t, 30, got.FN, "locked field must not move")
	assert.True(t, got.Valid())
}

func TestAdjustCountsToTotal_AtomicReject(t *testing.T) {
	// fp and tn are already 0, fn locked: the surplus from tp=100 has
	// nowhere to go, so the edit must be rejected verbatim.
	counts := demo.ConfusionCounts{TP: 70, FP: 0, TN: 0, FN: 30}

	got, err := AdjustCountsToTotal(counts, FieldTP, 100, map[Field]bool{FieldFN: true}, 100)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsatisfiable, errors.GetCode(err))
	assert.Equal(t, counts, got, "rejected edit must leave counts untouched")
}

func TestAdjustCountsToTotal_RejectsLockedEdit(t *testing.T) {
	counts := demo.ConfusionCounts{TP: 50, FP: 50, TN: 50, FN: 50}
	_, err := AdjustCountsToTotal(counts, FieldTP, 60, map[Field]bool{FieldTP: true}, 200)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestSimulateScoresFromCounts_Shape(t *testing.T) {
	counts := demo.ConfusionCounts{TP: 70, FP: 20, TN: 80, FN: 30}
	src := rng.NewSeededBoxMuller(99)

	scores, labels, err := SimulateScoresFromCounts(counts, src)
	require.NoError(t, err)
	require.Len(t, scores, counts.Total())
	require.Len(t, labels, counts.Total())

	var posSum, negSum float64
	var posN, negN int
	for i, l := range labels {
		if l == 1 {
			posSum += scores[i]
			posN++
		} else {
			negSum += scores[i]
			negN++
		}
	}
	assert.Equal(t, counts.TP+counts.FN, posN)
	assert.Equal(t, counts.TN+counts.FP, negN)

	// tpr=0.7 and tnr=0.8 place the positive mean above the negative one.
	assert.Greater(t, posSum/float64(posN), negSum/float64(negN))
}
