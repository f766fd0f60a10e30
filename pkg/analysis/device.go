package analysis

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/liuke128/tegsim/pkg/material"
)

// CurrentRange generates the scanned current densities, in A/cm2, from
// Start to Stop inclusive in Increment steps.
type CurrentRange struct {
	Start     float64
	Stop      float64
	Increment float64
}

func (r CurrentRange) Values() []float64 {
	if r.Increment <= 0 || r.Stop < r.Start {
		return nil
	}
	// integer step count so Stop is scanned despite rounding error
	n := int(math.Floor((r.Stop-r.Start)/r.Increment+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Start + float64(i)*r.Increment
	}
	return out
}

// DeviceParams describes one couple analysis request: boundary temperatures,
// grid and iteration settings shared by both legs, the two compositions, the
// N-to-P cross-sectional area ratio and the device current scan range.
type DeviceParams struct {
	Th, Tc       float64
	Nodes        int
	MaxIter      int
	CompositionP string
	CompositionN string
	AreaRatio    float64
	Currents     CurrentRange
}

// SweepPoint is one scanned device operating point. Power is the
// area-weighted density in W/m2, Efficiency the weighted branch efficiency
// in percent.
type SweepPoint struct {
	Current    float64
	Power      float64
	Efficiency float64
}

// OperatingPoint reports an optimum found in a sweep.
type OperatingPoint struct {
	Current    float64
	Power      float64
	Efficiency float64
}

type SweepResult struct {
	Points        []SweepPoint
	MaxPower      OperatingPoint
	MaxEfficiency OperatingPoint
}

// SweepDevice scans the device current range and combines the two legs at
// each sample. The device current j splits into leg current densities
// j_p = -j and j_n = j/ratio; each leg gets its own temperature solve
// followed by the efficiency calculation, so samples are independent and the
// sweep is deterministic. The maximum-power and maximum-efficiency points
// are located separately; they are not in general the same current.
func (e *Engine) SweepDevice(p DeviceParams) (SweepResult, error) {
	if p.AreaRatio <= 0 {
		return SweepResult{}, fmt.Errorf("area ratio must be positive, got %g", p.AreaRatio)
	}
	currents := p.Currents.Values()
	if len(currents) == 0 {
		return SweepResult{}, fmt.Errorf("empty current range %+v", p.Currents)
	}

	pArea := 1 / (1 + p.AreaRatio)
	nArea := p.AreaRatio / (1 + p.AreaRatio)

	res := SweepResult{Points: make([]SweepPoint, 0, len(currents))}
	powers := make([]float64, 0, len(currents))
	effs := make([]float64, 0, len(currents))

	for _, j := range currents {
		jp := -j
		jn := j / p.AreaRatio

		pField := e.SolveTemperature(p.Th, p.Tc, p.Nodes, material.P, p.CompositionP, jp, p.MaxIter)
		nField := e.SolveTemperature(p.Th, p.Tc, p.Nodes, material.N, p.CompositionN, jn, p.MaxIter)

		pRes := e.Efficiency(p.Th, p.Tc, material.P, p.CompositionP, jp, pField.Positions, pField.Temperatures)
		nRes := e.Efficiency(p.Th, p.Tc, material.N, p.CompositionN, jn, nField.Positions, nField.Temperatures)

		totalPower := pRes.Power*pArea + nRes.Power*nArea
		totalEff := 0.0
		if pRes.Efficiency > 0 && nRes.Efficiency > 0 {
			totalEff = pRes.Efficiency*pArea + nRes.Efficiency*nArea
		}

		res.Points = append(res.Points, SweepPoint{Current: j, Power: totalPower, Efficiency: totalEff})
		powers = append(powers, totalPower)
		effs = append(effs, totalEff)
	}

	if idx := floats.MaxIdx(powers); powers[idx] > 0 {
		res.MaxPower = OperatingPoint{
			Current:    currents[idx],
			Power:      powers[idx],
			Efficiency: effs[idx],
		}
		log.Infof("max power %.4e W/m2 at %.2f A/cm2", powers[idx], currents[idx])
	}
	if idx := floats.MaxIdx(effs); effs[idx] > 0 {
		res.MaxEfficiency = OperatingPoint{
			Current:    currents[idx],
			Power:      powers[idx],
			Efficiency: effs[idx],
		}
		log.Infof("max efficiency %.4f%% at %.2f A/cm2", effs[idx], currents[idx])
	}

	return res, nil
}

// BranchPoint is one sample of a single-leg current scan.
type BranchPoint struct {
	Current    float64
	Efficiency float64
	Power      float64
}

// ScanBranch sweeps one leg across a current range, solving the field and
// the efficiency at every sample, and reports the samples together with the
// best-efficiency operating point (zero when no sample yields a positive
// efficiency).
func (e *Engine) ScanBranch(th, tc float64, nodes, maxIter int, kind material.Kind, composition string, currents CurrentRange) ([]BranchPoint, OperatingPoint) {
	var (
		points []BranchPoint
		best   OperatingPoint
	)
	for _, j := range currents.Values() {
		field := e.SolveTemperature(th, tc, nodes, kind, composition, j, maxIter)
		r := e.Efficiency(th, tc, kind, composition, j, field.Positions, field.Temperatures)
		points = append(points, BranchPoint{Current: j, Efficiency: r.Efficiency, Power: r.Power})
		if r.Efficiency > best.Efficiency {
			best = OperatingPoint{Current: j, Power: r.Power, Efficiency: r.Efficiency}
		}
	}
	return points, best
}
