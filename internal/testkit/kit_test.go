package testkit

import (
	"math"
	"testing"
)

func TestGaussianClouds_LabelsAndDeterminism(t *testing.T) {
	kit := NewKit()

	a, err := kit.GaussianClouds(42, 50, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(a))
	}

	zeros, ones := 0, 0
	for _, s := range a {
		switch s.Label {
		case 0:
			zeros++
		case 1:
			ones++
		default:
			t.Fatalf("unexpected label %d", s.Label)
		}
	}
	if zeros != 50 || ones != 50 {
		t.Errorf("expected balanced classes, got %d/%d", zeros, ones)
	}

	b, _ := kit.GaussianClouds(42, 50, 4, 1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed should generate identical clouds")
		}
	}
}

func TestNoisyPolynomial_FollowsCurve(t *testing.T) {
	kit := NewKit()

	// y = 1 + 2x with no noise
	points, err := kit.NoisyPolynomial(7, []float64{1, 2}, 11, 0, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range points {
		want := 1 + 2*p.X
		if math.Abs(p.Y-want) > 1e-12 {
			t.Errorf("y(%v) = %v, want %v", p.X, p.Y, want)
		}
	}
	if points[0].X != 0 || points[10].X != 10 {
		t.Errorf("x range endpoints wrong: %v .. %v", points[0].X, points[10].X)
	}
}

func TestProfileSeries(t *testing.T) {
	p := ProfileSeries([]float64{1, 2, 3, 4, 5})
	if p.Mean != 3 || p.Min != 1 || p.Max != 5 {
		t.Errorf("unexpected profile: %+v", p)
	}
}
