package analysis

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/matrix"
)

// TemperatureResult is the steady-state field for one leg at one current
// density. Positions are normalized to [0, 1] with uniform spacing; the two
// boundary nodes are pinned to Tc and Th.
type TemperatureResult struct {
	Positions    []float64
	Temperatures []float64
	State        SolveState
	Reason       Degradation
	Iterations   int
}

// SolveTemperature computes the temperature distribution along a leg by a
// bounded fixed-point iteration: transport coefficients are evaluated on the
// previous iterate, the linearized finite-difference system is solved, and
// the loop stops once the field moves less than the convergence tolerance.
// currentDensity is in A/cm2. The method never fails; a singular system or a
// non-finite solution falls back to the linear initial ramp and the outcome
// is tagged on the result.
func (e *Engine) SolveTemperature(th, tc float64, nodes int, kind material.Kind, composition string, currentDensity float64, maxIter int) TemperatureResult {
	if nodes < 3 {
		nodes = 3
	}
	if maxIter < 1 {
		maxIter = 1
	}

	res := TemperatureResult{
		Positions:    make([]float64, nodes),
		Temperatures: make([]float64, nodes),
		State:        IterationCapped,
		Reason:       DegradationNone,
	}
	floats.Span(res.Positions, 0, 1)
	floats.Span(res.Temperatures, tc, th)

	ip, err := e.lib.Interpolator(kind, composition)
	if err != nil {
		log.Warnf("temperature solve: %v, returning linear ramp", err)
		res.State = Fallback
		res.Reason = UnknownMaterial
		return res
	}

	sys, err := matrix.NewMatrix(nodes)
	if err != nil {
		log.Warnf("temperature solve: %v, returning linear ramp", err)
		res.State = Fallback
		res.Reason = SingularSystem
		return res
	}
	defer sys.Destroy()

	j := currentDensity * consts.CurrentScaleSolver // A/cm2 -> A/m2
	dx := 1.0 / float64(nodes-1)
	temps := res.Temperatures

	for iter := 0; iter < maxIter; iter++ {
		co := evalCoeffs(ip, temps, j)

		next, err := iterateField(sys, co, dx, th, tc)
		if err != nil {
			log.Debugf("temperature solve iteration %d: %v, returning linear ramp", iter+1, err)
			floats.Span(temps, tc, th)
			res.State = Fallback
			res.Reason = SingularSystem
			return res
		}

		clipField(next, th, tc)
		next[0], next[len(next)-1] = tc, th // Dirichlet nodes stay pinned

		maxChange := 0.0
		for i := range temps {
			if d := math.Abs(next[i] - temps[i]); d > maxChange {
				maxChange = d
			}
		}
		copy(temps, next)
		res.Iterations = iter + 1

		log.Debugf("temperature solve iteration %d: max change %.6f K", iter+1, maxChange)
		if maxChange < e.convergence.tol {
			res.State = Converged
			break
		}
	}

	return res
}

// iterateField assembles and solves one linearized system. A panic out of
// the assembly or the sparse kernels is converted to an error so the caller
// falls back to the ramp instead of crashing.
func iterateField(sys *matrix.SystemMatrix, co nodeCoeffs, dx, th, tc float64) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("linear system panic: %v", r)
		}
	}()

	sys.Clear()
	if err := assembleSystem(sys, co, dx, th, tc); err != nil {
		return nil, err
	}
	return sys.Solve()
}

// assembleSystem loads the Dirichlet boundary rows and the three-point
// stencil of the interior rows. Rows and columns are 1-based.
func assembleSystem(sys *matrix.SystemMatrix, co nodeCoeffs, dx, th, tc float64) error {
	n := sys.Size
	if err := sys.AddElement(1, 1, 1.0); err != nil {
		return err
	}
	if err := sys.SetRHS(1, tc); err != nil {
		return err
	}
	if err := sys.AddElement(n, n, 1.0); err != nil {
		return err
	}
	if err := sys.SetRHS(n, th); err != nil {
		return err
	}

	for i := 1; i <= n-2; i++ { // 0-based interior node index
		row := i + 1
		lower := 1 / (co.c2[i] * dx)
		diag := co.c4[i+1]/co.c2[i+1] - 1/(co.c2[i+1]*dx) - (1-co.c1[i]*dx)/(co.c2[i]*dx)
		upper := (1-co.c1[i+1]*dx)/(co.c2[i+1]*dx) - co.c3[i+1]*dx - (1-co.c1[i+1]*dx)*co.c4[i+1]/co.c2[i+1]

		if err := sys.AddElement(row, row-1, lower); err != nil {
			return err
		}
		if err := sys.AddElement(row, row, diag); err != nil {
			return err
		}
		if err := sys.AddElement(row, row+1, upper); err != nil {
			return err
		}
		if err := sys.SetRHS(row, co.c5[i-1]*dx); err != nil {
			return err
		}
	}
	return nil
}

// clipField bounds the iterate to the physically plausible window around the
// boundary temperatures, guarding against overshoot from the linearized
// coefficients.
func clipField(temps []float64, th, tc float64) {
	lo := math.Min(tc, th) * consts.ClipLow
	hi := math.Max(tc, th) * consts.ClipHigh
	for i, t := range temps {
		if t < lo {
			temps[i] = lo
		} else if t > hi {
			temps[i] = hi
		}
	}
}
