package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/analysis"
	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/plotting"
)

var plotDir = flag.String("plots", "", "directory for the comparison PNG (optional)")

func main() {
	flag.Parse()

	lib, err := material.BuiltinLibrary()
	if err != nil {
		log.Fatalf("error material library: %v", err)
	}
	engine := analysis.NewEngine(lib)

	curves := map[string][]analysis.ZTPoint{}
	for _, kind := range []material.Kind{material.P, material.N} {
		for _, comp := range lib.Compositions(kind) {
			label := fmt.Sprintf("%s %s", kind, comp)
			curves[label] = engine.ZTCurve(kind, comp,
				consts.TempLookupMin, consts.TempLookupMax, consts.ZTCurveStep)
		}
	}

	for _, kind := range []material.Kind{material.P, material.N} {
		for _, comp := range lib.Compositions(kind) {
			fmt.Printf("\n%s %s:\n", kind, comp)
			for _, pt := range curves[fmt.Sprintf("%s %s", kind, comp)] {
				fmt.Printf("  %6.1f K  ZT = %.4f\n", pt.Temp, pt.ZT)
			}
		}
	}

	if *plotDir != "" {
		path, err := plotting.ZTCurves(*plotDir, curves)
		if err != nil {
			log.Fatalf("error plotting: %v", err)
		}
		fmt.Printf("\nPlot written to %s\n", path)
	}
}
