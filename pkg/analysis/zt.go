package analysis

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/liuke128/tegsim/pkg/material"
)

// FigureOfMerit evaluates the dimensionless ZT = S^2*T/(kappa*rho) at one
// temperature. The Seebeck magnitude is used, so N-type legs with their
// negative sign convention score the same as an equivalent P-type leg.
// Returns 0 when the material is unknown or the evaluation is degenerate.
func (e *Engine) FigureOfMerit(kind material.Kind, composition string, temp float64) float64 {
	ip, err := e.lib.Interpolator(kind, composition)
	if err != nil {
		log.Warnf("figure of merit: %v", err)
		return 0
	}

	s := math.Abs(ip.Seebeck(temp))
	rho := ip.Resistivity(temp)
	kappa := ip.Conductivity(temp)
	if rho <= 0 || kappa <= 0 || temp <= 0 {
		return 0
	}
	return s * s * temp / (kappa * rho)
}

type ZTPoint struct {
	Temp float64
	ZT   float64
}

// ZTCurve samples the figure of merit over [tMin, tMax] at the given step,
// the data behind the material selection plots.
func (e *Engine) ZTCurve(kind material.Kind, composition string, tMin, tMax, step float64) []ZTPoint {
	if step <= 0 || tMax < tMin {
		return nil
	}
	var out []ZTPoint
	for t := tMin; t <= tMax; t += step {
		out = append(out, ZTPoint{Temp: t, ZT: e.FigureOfMerit(kind, composition, t)})
	}
	return out
}
