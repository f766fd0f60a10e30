package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/liuke128/tegsim/internal/config"
	"github.com/liuke128/tegsim/pkg/analysis"
	"github.com/liuke128/tegsim/pkg/material"
	"github.com/liuke128/tegsim/pkg/server"
)

var cfgPath = flag.String("config", "", "ini config file (optional)")

func main() {
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	lib, err := material.BuiltinLibrary()
	if err != nil {
		log.Fatalf("building material library: %v", err)
	}

	srv := server.New(analysis.NewEngine(lib), cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
