// Package plotting renders the analysis results to PNG files.
package plotting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/liuke128/tegsim/pkg/analysis"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

func savePlot(p *plot.Plot, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating plot directory: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return "", fmt.Errorf("saving %s: %v", path, err)
	}
	return path, nil
}

// TemperatureProfile draws the solved field along the leg.
func TemperatureProfile(dir string, field analysis.TemperatureResult) (string, error) {
	pts := make(plotter.XYs, len(field.Positions))
	for i := range field.Positions {
		pts[i].X = field.Positions[i] * 1e3
		pts[i].Y = field.Temperatures[i]
	}

	p := plot.New()
	p.Title.Text = "Temperature profile"
	p.X.Label.Text = "Position [mm]"
	p.Y.Label.Text = "Temperature [K]"

	if err := plotutil.AddLinePoints(p, "T(x)", pts); err != nil {
		return "", fmt.Errorf("building temperature plot: %v", err)
	}
	return savePlot(p, dir, "temperature.png")
}

// ZTCurves draws one figure-of-merit curve per labelled series.
func ZTCurves(dir string, curves map[string][]analysis.ZTPoint) (string, error) {
	p := plot.New()
	p.Title.Text = "Figure of merit"
	p.X.Label.Text = "Temperature [K]"
	p.Y.Label.Text = "ZT"
	p.Legend.Top = true

	labels := make([]string, 0, len(curves))
	for label := range curves {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var args []interface{}
	for _, label := range labels {
		curve := curves[label]
		pts := make(plotter.XYs, len(curve))
		for i, c := range curve {
			pts[i].X = c.Temp
			pts[i].Y = c.ZT
		}
		args = append(args, label, pts)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return "", fmt.Errorf("building zt plot: %v", err)
	}
	return savePlot(p, dir, "zt.png")
}

// SweepCurves draws power density and efficiency against the device current.
func SweepCurves(dir string, res analysis.SweepResult) (string, error) {
	power := make(plotter.XYs, len(res.Points))
	eff := make(plotter.XYs, len(res.Points))
	for i, pt := range res.Points {
		power[i].X = pt.Current
		power[i].Y = pt.Power
		eff[i].X = pt.Current
		eff[i].Y = pt.Efficiency
	}

	p := plot.New()
	p.Title.Text = "Power density"
	p.X.Label.Text = "Current density [A/cm2]"
	p.Y.Label.Text = "Power [W/m2]"
	if err := plotutil.AddLinePoints(p, "power", power); err != nil {
		return "", fmt.Errorf("building power plot: %v", err)
	}
	powerPath, err := savePlot(p, dir, "power.png")
	if err != nil {
		return "", err
	}

	q := plot.New()
	q.Title.Text = "Conversion efficiency"
	q.X.Label.Text = "Current density [A/cm2]"
	q.Y.Label.Text = "Efficiency [%]"
	if err := plotutil.AddLinePoints(q, "efficiency", eff); err != nil {
		return "", fmt.Errorf("building efficiency plot: %v", err)
	}
	if _, err := savePlot(q, dir, "efficiency.png"); err != nil {
		return "", err
	}
	return powerPath, nil
}

// OptimizationCurve draws power against efficiency across the sweep, the
// curve used to trade the two optima off against each other.
func OptimizationCurve(dir string, res analysis.SweepResult) (string, error) {
	pts := make(plotter.XYs, len(res.Points))
	for i, pt := range res.Points {
		pts[i].X = pt.Efficiency
		pts[i].Y = pt.Power
	}

	p := plot.New()
	p.Title.Text = "Power vs efficiency"
	p.X.Label.Text = "Efficiency [%]"
	p.Y.Label.Text = "Power [W/m2]"
	if err := plotutil.AddLinePoints(p, "operating points", pts); err != nil {
		return "", fmt.Errorf("building optimization plot: %v", err)
	}
	return savePlot(p, dir, "optimization.png")
}
