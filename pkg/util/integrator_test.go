package util

import (
	"math"
	"testing"
)

func TestTrapezoidConstant(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{2, 2, 2, 2}
	if got := Trapezoid(x, y); math.Abs(got-6) > 1e-12 {
		t.Errorf("Trapezoid = %v, want 6", got)
	}
}

func TestTrapezoidLinear(t *testing.T) {
	// integral of y=x over [0,2] is 2 and the trapezoid rule is exact
	x := []float64{0, 0.5, 1, 1.5, 2}
	y := []float64{0, 0.5, 1, 1.5, 2}
	if got := Trapezoid(x, y); math.Abs(got-2) > 1e-12 {
		t.Errorf("Trapezoid = %v, want 2", got)
	}
}

func TestTrapezoidNonMonotonicAbscissa(t *testing.T) {
	// a backward segment subtracts its area
	x := []float64{0, 2, 1}
	y := []float64{1, 1, 1}
	if got := Trapezoid(x, y); math.Abs(got-1) > 1e-12 {
		t.Errorf("Trapezoid = %v, want 1", got)
	}
}

func TestTrapezoidDegenerateInput(t *testing.T) {
	if got := Trapezoid([]float64{1}, []float64{1}); got != 0 {
		t.Errorf("single sample = %v, want 0", got)
	}
	if got := Trapezoid([]float64{1, 2}, []float64{1}); got != 0 {
		t.Errorf("mismatched lengths = %v, want 0", got)
	}
	if got := TrapezoidUniform(0.5, nil); got != 0 {
		t.Errorf("empty uniform input = %v, want 0", got)
	}
}

func TestTrapezoidUniform(t *testing.T) {
	y := []float64{0, 1, 2, 3}
	if got := TrapezoidUniform(1, y); math.Abs(got-4.5) > 1e-12 {
		t.Errorf("TrapezoidUniform = %v, want 4.5", got)
	}
	want := Trapezoid([]float64{0, 0.5, 1, 1.5}, y)
	if got := TrapezoidUniform(0.5, y); math.Abs(got-want) > 1e-12 {
		t.Errorf("TrapezoidUniform = %v, want %v from the general rule", got, want)
	}
}
