package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/liuke128/tegsim/internal/config"
	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/analysis"
	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/plotting"
	"github.com/liuke128/tegsim/pkg/util"
)

var (
	mode     = flag.String("mode", "sweep", "analysis mode: leg | zt | branch | sweep")
	cfgPath  = flag.String("config", "", "ini config file (optional)")
	matPath  = flag.String("materials", "", "material table file (optional, adds to the built-in library)")
	plotDir  = flag.String("plots", "", "directory for PNG plots (optional)")
	kindFlag = flag.String("kind", "P", "leg material kind for leg/zt/branch modes: P | N")
	compFlag = flag.String("composition", "", "composition label (defaults per kind)")
	current  = flag.Float64("current", -1.0, "leg current density in A/cm2 for leg mode")
)

func loadConfig() config.Config {
	if *cfgPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	return cfg
}

func buildEngine() *analysis.Engine {
	lib, err := material.BuiltinLibrary()
	if err != nil {
		log.Fatalf("building material library: %v", err)
	}
	if *matPath != "" {
		content, err := os.ReadFile(*matPath)
		if err != nil {
			log.Fatalf("reading material file: %v", err)
		}
		tables, err := material.Parse(string(content))
		if err != nil {
			log.Fatalf("parsing material file: %v", err)
		}
		for _, t := range tables {
			if err := lib.Register(t); err != nil {
				log.Fatalf("registering material: %v", err)
			}
		}
	}
	return analysis.NewEngine(lib)
}

func legComposition(cfg config.Config, kind material.Kind) string {
	if *compFlag != "" {
		return *compFlag
	}
	if kind == material.N {
		return cfg.CompositionN
	}
	return cfg.CompositionP
}

func runLeg(engine *analysis.Engine, cfg config.Config) {
	kind, err := material.ParseKind(*kindFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	comp := legComposition(cfg, kind)

	field := engine.SolveTemperature(cfg.Th, cfg.Tc, cfg.Nodes, kind, comp, *current, cfg.MaxIter)
	res := engine.Efficiency(cfg.Th, cfg.Tc, kind, comp, *current, field.Positions, field.Temperatures)

	fmt.Printf("Leg %s %s at %s (%s..%s)\n", kind, comp,
		util.FormatCurrentDensity(*current),
		util.FormatTemperature(cfg.Tc), util.FormatTemperature(cfg.Th))
	fmt.Printf("Solve: %s after %d iterations\n", field.State, field.Iterations)
	if field.Reason != analysis.DegradationNone {
		fmt.Printf("Degraded: %s\n", field.Reason)
	}

	fmt.Println("\nPosition        Temperature")
	fmt.Println("---------------------------")
	for i, x := range field.Positions {
		fmt.Printf("%s  %s\n", util.FormatValueFactor(x, "m"), util.FormatTemperature(field.Temperatures[i]))
	}

	fmt.Printf("\nEfficiency: %s\n", util.FormatPercent(res.Efficiency))
	fmt.Printf("Power:      %s\n", util.FormatValueFactor(res.Power, "W/m2"))

	if *plotDir != "" {
		path, err := plotting.TemperatureProfile(*plotDir, field)
		if err != nil {
			log.Warnf("plotting temperature profile: %v", err)
		} else {
			fmt.Printf("Plot:       %s\n", path)
		}
	}
}

func runZT(engine *analysis.Engine, cfg config.Config) {
	kind, err := material.ParseKind(*kindFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	comp := legComposition(cfg, kind)
	curve := engine.ZTCurve(kind, comp, consts.TempLookupMin, consts.TempLookupMax, consts.ZTCurveStep)

	fmt.Printf("Figure of merit, %s %s\n", kind, comp)
	fmt.Println("\nTemperature      ZT")
	fmt.Println("--------------------")
	for _, pt := range curve {
		fmt.Printf("%s  %.4f\n", util.FormatTemperature(pt.Temp), pt.ZT)
	}

	if *plotDir != "" {
		path, err := plotting.ZTCurves(*plotDir, map[string][]analysis.ZTPoint{
			fmt.Sprintf("%s %s", kind, comp): curve,
		})
		if err != nil {
			log.Warnf("plotting zt curve: %v", err)
		} else {
			fmt.Printf("\nPlot: %s\n", path)
		}
	}
}

func runBranch(engine *analysis.Engine, cfg config.Config) {
	kind, err := material.ParseKind(*kindFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	comp := legComposition(cfg, kind)
	currents := analysis.CurrentRange{Start: cfg.SweepStart, Stop: cfg.SweepStop, Increment: cfg.SweepStep}

	points, best := engine.ScanBranch(cfg.Th, cfg.Tc, cfg.Nodes, cfg.MaxIter, kind, comp, currents)

	fmt.Printf("Branch scan, %s %s (%d points)\n", kind, comp, len(points))
	fmt.Println("\nCurrent        Efficiency   Power")
	fmt.Println("----------------------------------------")
	for _, pt := range points {
		fmt.Printf("%s  %s  %s\n",
			util.FormatCurrentDensity(pt.Current),
			util.FormatPercent(pt.Efficiency),
			util.FormatValueFactor(pt.Power, "W/m2"))
	}
	fmt.Printf("\nBest efficiency %s at %s\n",
		util.FormatPercent(best.Efficiency), util.FormatCurrentDensity(best.Current))
}

func runSweep(engine *analysis.Engine, cfg config.Config) {
	res, err := engine.SweepDevice(analysis.DeviceParams{
		Th:           cfg.Th,
		Tc:           cfg.Tc,
		Nodes:        cfg.Nodes,
		MaxIter:      cfg.MaxIter,
		CompositionP: cfg.CompositionP,
		CompositionN: cfg.CompositionN,
		AreaRatio:    cfg.AreaRatio,
		Currents:     analysis.CurrentRange{Start: cfg.SweepStart, Stop: cfg.SweepStop, Increment: cfg.SweepStep},
	})
	if err != nil {
		log.Fatalf("device sweep: %v", err)
	}

	fmt.Printf("Device sweep, P %s / N %s, area ratio %.3f (%d points)\n",
		cfg.CompositionP, cfg.CompositionN, cfg.AreaRatio, len(res.Points))
	fmt.Println("\nCurrent        Power             Efficiency")
	fmt.Println("--------------------------------------------")
	for _, pt := range res.Points {
		fmt.Printf("%s  %-16s  %s\n",
			util.FormatCurrentDensity(pt.Current),
			util.FormatValueFactor(pt.Power, "W/m2"),
			util.FormatPercent(pt.Efficiency))
	}

	fmt.Printf("\nMax power:      %s at %s (%s)\n",
		util.FormatValueFactor(res.MaxPower.Power, "W/m2"),
		util.FormatCurrentDensity(res.MaxPower.Current),
		util.FormatPercent(res.MaxPower.Efficiency))
	fmt.Printf("Max efficiency: %s at %s (%s)\n",
		util.FormatPercent(res.MaxEfficiency.Efficiency),
		util.FormatCurrentDensity(res.MaxEfficiency.Current),
		util.FormatValueFactor(res.MaxEfficiency.Power, "W/m2"))

	if *plotDir != "" {
		path, err := plotting.SweepCurves(*plotDir, res)
		if err != nil {
			log.Warnf("plotting sweep curves: %v", err)
		} else {
			fmt.Printf("Plot:           %s\n", path)
		}
		if _, err := plotting.OptimizationCurve(*plotDir, res); err != nil {
			log.Warnf("plotting optimization curve: %v", err)
		}
	}
}

func main() {
	flag.Parse()

	cfg := loadConfig()
	engine := buildEngine()

	switch *mode {
	case "leg":
		runLeg(engine, cfg)
	case "zt":
		runZT(engine, cfg)
	case "branch":
		runBranch(engine, cfg)
	case "sweep":
		runSweep(engine, cfg)
	default:
		log.Fatalf("unknown mode %q (want leg, zt, branch or sweep)", *mode)
	}
}
