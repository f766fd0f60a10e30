package analysis

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/util"
)

// EfficiencyResult carries the conversion efficiency in percent, clamped to
// [0, 0.9*Carnot], and the output power density in W/m2 before any area
// weighting.
type EfficiencyResult struct {
	Efficiency float64
	Power      float64
	Reason     Degradation
}

// Efficiency derives the heat flux along the leg from the temperature field
// and integrates the Seebeck and Joule contributions to get the conversion
// efficiency and power density. currentDensity is in A/cm2. Th <= Tc is a
// degenerate zero result, not an error; a missing or too-short field is
// replaced by a linear ramp approximation. The method never fails.
func (e *Engine) Efficiency(th, tc float64, kind material.Kind, composition string, currentDensity float64, positions, temps []float64) EfficiencyResult {
	if th <= tc {
		return EfficiencyResult{Reason: BoundaryInvalid}
	}

	ip, err := e.lib.Interpolator(kind, composition)
	if err != nil {
		log.Warnf("efficiency: %v", err)
		return EfficiencyResult{Reason: UnknownMaterial}
	}

	if !fieldUsable(positions, temps) {
		positions = make([]float64, consts.FallbackNodes)
		temps = make([]float64, consts.FallbackNodes)
		floats.Span(positions, 0, 1)
		floats.Span(temps, tc, th)
	}

	n := len(positions)
	dx := (positions[n-1] - positions[0]) / float64(n-1)

	j := currentDensity * consts.CurrentScaleEfficiency // A/cm2 -> A/m2
	co := evalCoeffs(ip, temps, j)

	// Heat flux from the first-order recurrence; the boundary flux gets the
	// c3/c4/c5 correction terms at node 1.
	q := make([]float64, n)
	for k := 1; k < n; k++ {
		q[k] = ((1/dx-co.c1[k])*temps[k] - temps[k-1]/dx) / co.c2[k]
	}
	q[0] = (1-co.c4[1]*dx)*q[1] - co.c3[1]*dx*temps[1] - co.c5[1]*dx

	// Trapezoidal integrals: Seebeck over temperature, resistivity over
	// position.
	sVals := make([]float64, n)
	rhoVals := make([]float64, n)
	for m := 0; m < n; m++ {
		t := clampTemp(temps[m])
		sVals[m] = ip.Seebeck(t)
		rhoVals[m] = ip.Resistivity(t)
	}
	seebeckInt := util.Trapezoid(temps, sVals)
	resistInt := util.TrapezoidUniform(dx, rhoVals)

	power := j * (seebeckInt + j*resistInt)

	res := EfficiencyResult{Power: power}
	if q[n-1] == 0 {
		log.Debugf("efficiency: zero heat flux at the hot end, reporting 0")
		res.Reason = ZeroHeatFlux
		return res
	}

	eff := j * (seebeckInt + j*resistInt) / q[n-1] * 100
	cap := (th - tc) / th * 100 * consts.CarnotCapFactor
	switch {
	case eff < 0 || math.IsNaN(eff):
		eff = 0
	case eff > cap:
		log.Debugf("efficiency %.4f%% above the Carnot cap %.4f%%, clamping", eff, cap)
		eff = cap
	}
	res.Efficiency = eff
	return res
}

func fieldUsable(positions, temps []float64) bool {
	if len(positions) < 3 || len(positions) != len(temps) {
		return false
	}
	for i := range positions {
		if math.IsNaN(positions[i]) || math.IsInf(positions[i], 0) ||
			math.IsNaN(temps[i]) || math.IsInf(temps[i], 0) {
			return false
		}
	}
	return positions[len(positions)-1] != positions[0]
}
