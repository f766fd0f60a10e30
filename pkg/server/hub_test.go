package server

import (
	"testing"

	"github.com/liuke128/tegsim/internal/config"
	"github.com/liuke128/tegsim/pkg/analysis"
	"github.com/liuke128/tegsim/pkg/material"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	lib, err := material.BuiltinLibrary()
	if err != nil {
		t.Fatalf("building library: %v", err)
	}
	return NewHub(nil, analysis.NewEngine(lib), config.Default())
}

func TestHandleUnknownType(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "bogus"})
	if resp.Error == "" {
		t.Error("unknown request type should return an error reply")
	}
	if resp.Type != "bogus" {
		t.Errorf("reply type = %q, want the request type echoed", resp.Type)
	}
}

func TestHandleSolveWithDefaults(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "solve", Material: "P", Composition: "0.02", Current: -1.0})
	if resp.Error != "" {
		t.Fatalf("solve reply holds error: %s", resp.Error)
	}

	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("solve reply data has type %T", resp.Data)
	}
	temps, ok := data["temperatures"].([]float64)
	if !ok {
		t.Fatalf("temperatures missing from reply: %v", data)
	}
	// the defaulted grid comes from the config
	if len(temps) != config.Default().Nodes {
		t.Errorf("got %d nodes, want configured default %d", len(temps), config.Default().Nodes)
	}
	if temps[0] != config.Default().Tc || temps[len(temps)-1] != config.Default().Th {
		t.Errorf("boundaries = %v..%v, want configured Tc..Th", temps[0], temps[len(temps)-1])
	}
}

func TestHandleSolveBadKind(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "solve", Material: "Q", Composition: "0.02"})
	if resp.Error == "" {
		t.Error("bad material kind should return an error reply")
	}
}

func TestHandleEfficiency(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "efficiency", Material: "N", Composition: "0.0012", Current: 2.0})
	if resp.Error != "" {
		t.Fatalf("efficiency reply holds error: %s", resp.Error)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("efficiency reply data has type %T", resp.Data)
	}
	eff, ok := data["efficiency"].(float64)
	if !ok || eff < 0 {
		t.Errorf("efficiency = %v, want non-negative float", data["efficiency"])
	}
}

func TestHandleSweepUsesConfiguredDefaults(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "sweep"})
	if resp.Error != "" {
		t.Fatalf("sweep reply holds error: %s", resp.Error)
	}
	res, ok := resp.Data.(analysis.SweepResult)
	if !ok {
		t.Fatalf("sweep reply data has type %T", resp.Data)
	}
	cfg := config.Default()
	want := len(analysis.CurrentRange{Start: cfg.SweepStart, Stop: cfg.SweepStop, Increment: cfg.SweepStep}.Values())
	if len(res.Points) != want {
		t.Errorf("got %d sweep points, want %d from the configured range", len(res.Points), want)
	}
}

func TestHandleCompositions(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "compositions"})
	if resp.Error != "" {
		t.Fatalf("compositions reply holds error: %s", resp.Error)
	}
	data, ok := resp.Data.(map[string][]string)
	if !ok {
		t.Fatalf("compositions reply data has type %T", resp.Data)
	}
	if len(data["P"]) != 3 || len(data["N"]) != 4 {
		t.Errorf("compositions = %v, want 3 P and 4 N entries", data)
	}
}

func TestHandleZT(t *testing.T) {
	h := testHub(t)
	resp := h.handle(Request{Type: "zt", Material: "P", Composition: "0.02", Temperature: 500})
	if resp.Error != "" {
		t.Fatalf("zt reply holds error: %s", resp.Error)
	}
	zt, ok := resp.Data.(float64)
	if !ok || zt <= 0 {
		t.Errorf("zt = %v, want positive float", resp.Data)
	}
}
