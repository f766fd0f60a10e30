package analysis

import (
	"math"
	"testing"

	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/matrix"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	lib, err := material.BuiltinLibrary()
	if err != nil {
		t.Fatalf("building library: %v", err)
	}
	return NewEngine(lib)
}

func TestSolveTemperaturePinsBoundaries(t *testing.T) {
	e := testEngine(t)
	for _, nodes := range []int{3, 5, 10, 40} {
		res := e.SolveTemperature(500, 300, nodes, material.P, "0.02", -1.0, 20)
		if len(res.Temperatures) != nodes {
			t.Fatalf("nodes=%d: got %d temperatures", nodes, len(res.Temperatures))
		}
		if res.Temperatures[0] != 300 {
			t.Errorf("nodes=%d: cold end = %v, want exactly 300", nodes, res.Temperatures[0])
		}
		if res.Temperatures[nodes-1] != 500 {
			t.Errorf("nodes=%d: hot end = %v, want exactly 500", nodes, res.Temperatures[nodes-1])
		}
	}
}

func TestSolveTemperatureFieldStaysBounded(t *testing.T) {
	e := testEngine(t)
	res := e.SolveTemperature(500, 300, 10, material.P, "0.02", -1.0, 20)

	lo, hi := 300*0.95, 500*1.1
	for i, temp := range res.Temperatures {
		if math.IsNaN(temp) || temp < lo || temp > hi {
			t.Errorf("T[%d] = %v outside [%v, %v]", i, temp, lo, hi)
		}
	}
	if res.State == Fallback {
		t.Errorf("solve degraded to fallback: %s", res.Reason)
	}
	if res.Iterations < 1 {
		t.Errorf("Iterations = %d, want at least 1", res.Iterations)
	}
}

func TestSolveTemperaturePositionsUniform(t *testing.T) {
	e := testEngine(t)
	res := e.SolveTemperature(500, 300, 10, material.N, "0.0012", 2.0, 20)

	if res.Positions[0] != 0 || res.Positions[len(res.Positions)-1] != 1 {
		t.Fatalf("positions span %v..%v, want 0..1", res.Positions[0], res.Positions[len(res.Positions)-1])
	}
	dx := res.Positions[1] - res.Positions[0]
	for i := 2; i < len(res.Positions); i++ {
		if math.Abs((res.Positions[i]-res.Positions[i-1])-dx) > 1e-12 {
			t.Errorf("non-uniform spacing at node %d", i)
		}
	}
}

func TestSolveTemperatureUnknownMaterialFallsBack(t *testing.T) {
	e := testEngine(t)
	res := e.SolveTemperature(500, 300, 10, material.P, "0.77", -1.0, 20)

	if res.State != Fallback || res.Reason != UnknownMaterial {
		t.Fatalf("state = %s, reason = %s; want fallback with unknownMaterial", res.State, res.Reason)
	}
	// linear ramp between the boundary temperatures
	if res.Temperatures[0] != 300 || res.Temperatures[len(res.Temperatures)-1] != 500 {
		t.Errorf("fallback ramp ends = %v..%v, want 300..500",
			res.Temperatures[0], res.Temperatures[len(res.Temperatures)-1])
	}
	mid := res.Temperatures[len(res.Temperatures)/2]
	if mid <= 300 || mid >= 500 {
		t.Errorf("fallback ramp midpoint = %v, want strictly between the boundaries", mid)
	}
}

func TestSolveTemperatureClampsDegenerateArguments(t *testing.T) {
	e := testEngine(t)

	res := e.SolveTemperature(500, 300, 1, material.P, "0.02", -1.0, 0)
	if len(res.Temperatures) != 3 {
		t.Errorf("node count = %d, want bumped to 3", len(res.Temperatures))
	}
	if res.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1 after maxIter bump", res.Iterations)
	}
}

func TestSolveTemperatureDeterministic(t *testing.T) {
	e := testEngine(t)
	a := e.SolveTemperature(500, 300, 10, material.P, "0.02", -1.0, 20)
	b := e.SolveTemperature(500, 300, 10, material.P, "0.02", -1.0, 20)

	if a.State != b.State || a.Iterations != b.Iterations {
		t.Fatalf("repeat solve differs: %s/%d vs %s/%d", a.State, a.Iterations, b.State, b.Iterations)
	}
	for i := range a.Temperatures {
		if a.Temperatures[i] != b.Temperatures[i] {
			t.Errorf("T[%d] differs between identical solves", i)
		}
	}
}

func TestSolveTemperatureConvergesAcrossIterations(t *testing.T) {
	e := testEngine(t)
	res := e.SolveTemperature(500, 300, 10, material.P, "0.02", -1.0, 20)

	if res.State != Converged {
		t.Fatalf("state = %s after %d iterations, want converged", res.State, res.Iterations)
	}
	// the interesting path is the second and later iterations, which stamp
	// the already-factored matrix again with updated coefficients
	if res.Iterations < 2 {
		t.Errorf("Iterations = %d, want at least 2", res.Iterations)
	}
	for i := 1; i < len(res.Temperatures); i++ {
		if res.Temperatures[i] < res.Temperatures[i-1]-1e-6 {
			t.Errorf("T[%d]=%v < T[%d]=%v, want monotone field",
				i, res.Temperatures[i], i-1, res.Temperatures[i-1])
		}
	}
}

func TestIterateFieldRecoversFromPanic(t *testing.T) {
	sys, err := matrix.NewMatrix(6)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	defer sys.Destroy()

	// coefficient slices shorter than the grid blow up inside the assembly;
	// the solver has to see an error, never a propagating panic
	short := nodeCoeffs{
		c1: make([]float64, 2),
		c2: []float64{-1, -1},
		c3: make([]float64, 2),
		c4: make([]float64, 2),
		c5: make([]float64, 2),
	}
	if _, err := iterateField(sys, short, 0.2, 500, 300); err == nil {
		t.Fatal("truncated coefficients should surface as an error")
	}
}

func TestSolveTemperatureZeroCurrentIsConduction(t *testing.T) {
	e := testEngine(t)
	res := e.SolveTemperature(500, 300, 10, material.P, "0.02", 0, 20)

	if res.State == Fallback {
		t.Fatalf("zero-current solve fell back: %s", res.Reason)
	}
	// without current the field is monotone between the boundaries
	for i := 1; i < len(res.Temperatures); i++ {
		if res.Temperatures[i] < res.Temperatures[i-1]-1e-6 {
			t.Errorf("T[%d]=%v < T[%d]=%v, want monotone field",
				i, res.Temperatures[i], i-1, res.Temperatures[i-1])
		}
	}
}
