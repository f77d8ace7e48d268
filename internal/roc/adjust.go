package roc

import (
	"statviz/domain/demo"
	"statviz/internal/errors"
)

// Field names a confusion count cell for the adjustment protocol.
type Field string

const (
	FieldTP Field = "tp"
	FieldFP Field = "fp"
	FieldTN Field = "tn"
	FieldFN Field = "fn"
)

var allFields = []Field{FieldTP, FieldFP, FieldTN, FieldFN}

func validField(f Field) bool {
	for _, known := range allFields {
		if f == known {
			return true
		}
	}
	return false
}

func get(c demo.ConfusionCounts, f Field) int {
	switch f {
	case FieldTP:
		return c.TP
	case FieldFP:
		return c.FP
	case FieldTN:
		return c.TN
	default:
		return c.FN
	}
}

func set(c *demo.ConfusionCounts, f Field, v int) {
	switch f {
	case FieldTP:
		c.TP = v
	case FieldFP:
		c.FP = v
	case FieldTN:
		c.TN = v
	default:
		c.FN = v
	}
}

// AdjustCountsToTotal applies an edit of one count and redistributes the
// resulting surplus or deficit across unlocked fields so the sum stays
// pinned at total.
//
// The commit is atomic: either the returned counts hit the target exactly,
// or the edit is rejected with a coded error and the caller keeps the prior
// state. The edited field itself never absorbs redistribution.
func AdjustCountsToTotal(counts demo.ConfusionCounts, changed Field, newValue int, locked map[Field]bool, total int) (demo.ConfusionCounts, error) {
	if !validField(changed) {
		return counts, errors.InvalidInput("unknown confusion field")
	}
	if newValue < 0 || newValue > total {
		return counts, errors.InvalidInput("count must be in 0..total")
	}
	if locked[changed] {
		return counts, errors.InvalidInput("cannot edit a locked field")
	}

	work := counts
	set(&work, changed, newValue)

	adjustable := make([]Field, 0, 3)
	for _, f := range allFields {
		if f != changed && !locked[f] {
			adjustable = append(adjustable, f)
		}
	}

	diff := work.Total() - total
	for diff != 0 {
		if diff > 0 {
			// Shrink the largest unlocked field that still has room
			var target Field
			best := 0
			for _, f := range adjustable {
				if v := get(work, f); v > best {
					best, target = v, f
				}
			}
			if best == 0 {
				return counts, errors.Unsatisfiable("locked fields prevent reaching the target total")
			}
			set(&work, target, best-1)
			diff--
		} else {
			// Grow the smallest unlocked field below the total
			var target Field
			best := total + 1
			for _, f := range adjustable {
				if v := get(work, f); v < total && v < best {
					best, target = v, f
				}
			}
			if best > total {
				return counts, errors.Unsatisfiable("locked fields prevent reaching the target total")
			}
			set(&work, target, best+1)
			diff++
		}
	}

	return work, nil
}
