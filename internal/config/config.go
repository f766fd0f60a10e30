package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config carries the runtime defaults shared by the CLI and the server.
// Every field has a built-in default so a missing file or section is fine.
type Config struct {
	Th      float64 // hot side, K
	Tc      float64 // cold side, K
	Nodes   int
	MaxIter int

	CompositionP string
	CompositionN string
	AreaRatio    float64
	SweepStart   float64 // A/cm2
	SweepStop    float64
	SweepStep    float64

	ServerAddr string
}

func Default() Config {
	return Config{
		Th:           500,
		Tc:           300,
		Nodes:        10,
		MaxIter:      20,
		CompositionP: "0.02",
		CompositionN: "0.0012",
		AreaRatio:    0.1,
		SweepStart:   0.1,
		SweepStop:    4.0,
		SweepStep:    0.1,
		ServerAddr:   ":9000",
	}
}

// Load reads an ini file, falling back to the defaults for anything the
// file does not set.
func Load(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %v", path, err)
	}

	d := Default()
	solver := file.Section("solver")
	device := file.Section("device")
	server := file.Section("server")

	return Config{
		Th:           solver.Key("Th").MustFloat64(d.Th),
		Tc:           solver.Key("Tc").MustFloat64(d.Tc),
		Nodes:        solver.Key("Nodes").MustInt(d.Nodes),
		MaxIter:      solver.Key("MaxIter").MustInt(d.MaxIter),
		CompositionP: device.Key("CompositionP").MustString(d.CompositionP),
		CompositionN: device.Key("CompositionN").MustString(d.CompositionN),
		AreaRatio:    device.Key("AreaRatio").MustFloat64(d.AreaRatio),
		SweepStart:   device.Key("SweepStart").MustFloat64(d.SweepStart),
		SweepStop:    device.Key("SweepStop").MustFloat64(d.SweepStop),
		SweepStep:    device.Key("SweepStep").MustFloat64(d.SweepStep),
		ServerAddr:   server.Key("Addr").MustString(d.ServerAddr),
	}, nil
}
