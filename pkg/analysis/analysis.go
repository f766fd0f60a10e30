package analysis

import (
	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/material"
)

// SolveState reports how a temperature solve ended.
type SolveState int

const (
	Converged SolveState = iota
	IterationCapped
	Fallback
)

func (s SolveState) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationCapped:
		return "iterationCapped"
	case Fallback:
		return "fallback"
	}
	return "?"
}

// Degradation names the condition that replaced a computed value with its
// documented substitute. Callers can tell a degraded result from a computed
// one without parsing logs.
type Degradation int

const (
	DegradationNone Degradation = iota
	BoundaryInvalid             // Th <= Tc, degenerate zero result
	SingularSystem              // linear solve failed, linear ramp substituted
	ZeroHeatFlux                // no flux at the hot end, zero efficiency
	UnknownMaterial             // no table registered for the requested key
)

func (d Degradation) String() string {
	switch d {
	case DegradationNone:
		return "none"
	case BoundaryInvalid:
		return "boundaryInvalid"
	case SingularSystem:
		return "singularSystem"
	case ZeroHeatFlux:
		return "zeroHeatFlux"
	case UnknownMaterial:
		return "unknownMaterial"
	}
	return "?"
}

// Engine runs the steady-state analyses against a material library. All
// methods are synchronous and safe for concurrent use; the library guards
// its own interpolator cache.
type Engine struct {
	lib         *material.Library
	convergence struct {
		tol     float64
		maxIter int
	}
}

func NewEngine(lib *material.Library) *Engine {
	e := &Engine{lib: lib}
	e.convergence.tol = consts.ConvergenceTol
	e.convergence.maxIter = 50
	return e
}

// Library exposes the engine's material library, e.g. for listing the
// registered compositions.
func (e *Engine) Library() *material.Library { return e.lib }

// nodeCoeffs holds the per-node coefficients of the governing equation
// kappa*T'' - J*S*T' - J^2*rho = 0 rewritten in first-order form.
type nodeCoeffs struct {
	c1, c2, c3, c4, c5 []float64
}

// evalCoeffs looks up the transport properties at each node, clamping the
// working temperature to the sampled window first so divergent intermediate
// iterates cannot push the lookup around, and derives c1..c5 for the given
// current density J in A/m2.
func evalCoeffs(ip *material.Interpolator, temps []float64, j float64) nodeCoeffs {
	n := len(temps)
	co := nodeCoeffs{
		c1: make([]float64, n),
		c2: make([]float64, n),
		c3: make([]float64, n),
		c4: make([]float64, n),
		c5: make([]float64, n),
	}
	for i, t := range temps {
		ts := clampTemp(t)
		s := ip.Seebeck(ts)
		rho := ip.Resistivity(ts)
		kappa := ip.Conductivity(ts)

		co.c1[i] = j * s / kappa
		co.c2[i] = -1 / kappa
		co.c3[i] = s * s * j * j / kappa
		co.c4[i] = -j * s / kappa
		co.c5[i] = rho * j * j
	}
	return co
}

func clampTemp(t float64) float64 {
	if t < consts.TempLookupMin {
		return consts.TempLookupMin
	}
	if t > consts.TempLookupMax {
		return consts.TempLookupMax
	}
	return t
}
