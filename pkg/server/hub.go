package server

import (
	log "github.com/sirupsen/logrus"

	"github.com/gorilla/websocket"

	"github.com/liuke128/tegsim/internal/config"
	"github.com/liuke128/tegsim/internal/consts"
	"github.com/liuke128/tegsim/pkg/analysis"
	"github.com/liuke128/tegsim/pkg/material"
)

// Request is one analysis message from the client. Unset numeric fields
// fall back to the server's configured defaults.
type Request struct {
	Type string `json:"type"` // solve | efficiency | zt | ztCurve | sweep | compositions

	Th          float64 `json:"th,omitempty"`
	Tc          float64 `json:"tc,omitempty"`
	Nodes       int     `json:"nodes,omitempty"`
	MaxIter     int     `json:"maxIter,omitempty"`
	Material    string  `json:"material,omitempty"`
	Composition string  `json:"composition,omitempty"`
	Current     float64 `json:"current,omitempty"` // A/cm2
	Temperature float64 `json:"temperature,omitempty"`

	CompositionP string  `json:"compositionP,omitempty"`
	CompositionN string  `json:"compositionN,omitempty"`
	AreaRatio    float64 `json:"areaRatio,omitempty"`
	SweepStart   float64 `json:"sweepStart,omitempty"`
	SweepStop    float64 `json:"sweepStop,omitempty"`
	SweepStep    float64 `json:"sweepStep,omitempty"`
}

type Response struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// Hub serves analysis requests over one websocket connection.
type Hub struct {
	conn   *websocket.Conn
	engine *analysis.Engine
	cfg    config.Config
}

func NewHub(conn *websocket.Conn, engine *analysis.Engine, cfg config.Config) *Hub {
	return &Hub{conn: conn, engine: engine, cfg: cfg}
}

// Run reads requests until the connection drops. Every request gets exactly
// one reply; a bad request is answered with an error reply, never a closed
// connection.
func (h *Hub) Run() {
	for {
		var req Request
		if err := h.conn.ReadJSON(&req); err != nil {
			log.Infof("connection closed: %v", err)
			return
		}
		reply := h.handle(req)
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Warnf("writing reply: %v", err)
			return
		}
	}
}

func (h *Hub) handle(req Request) Response {
	h.applyDefaults(&req)

	switch req.Type {
	case "solve":
		kind, err := material.ParseKind(req.Material)
		if err != nil {
			return Response{Type: req.Type, Error: err.Error()}
		}
		res := h.engine.SolveTemperature(req.Th, req.Tc, req.Nodes, kind, req.Composition, req.Current, req.MaxIter)
		return Response{Type: req.Type, Data: map[string]any{
			"positions":    res.Positions,
			"temperatures": res.Temperatures,
			"state":        res.State.String(),
			"reason":       res.Reason.String(),
			"iterations":   res.Iterations,
		}}

	case "efficiency":
		kind, err := material.ParseKind(req.Material)
		if err != nil {
			return Response{Type: req.Type, Error: err.Error()}
		}
		field := h.engine.SolveTemperature(req.Th, req.Tc, req.Nodes, kind, req.Composition, req.Current, req.MaxIter)
		res := h.engine.Efficiency(req.Th, req.Tc, kind, req.Composition, req.Current, field.Positions, field.Temperatures)
		return Response{Type: req.Type, Data: map[string]any{
			"efficiency": res.Efficiency,
			"power":      res.Power,
			"reason":     res.Reason.String(),
		}}

	case "zt":
		kind, err := material.ParseKind(req.Material)
		if err != nil {
			return Response{Type: req.Type, Error: err.Error()}
		}
		return Response{Type: req.Type, Data: h.engine.FigureOfMerit(kind, req.Composition, req.Temperature)}

	case "ztCurve":
		kind, err := material.ParseKind(req.Material)
		if err != nil {
			return Response{Type: req.Type, Error: err.Error()}
		}
		return Response{Type: req.Type, Data: h.engine.ZTCurve(kind, req.Composition,
			consts.TempLookupMin, consts.TempLookupMax, consts.ZTCurveStep)}

	case "sweep":
		res, err := h.engine.SweepDevice(analysis.DeviceParams{
			Th:           req.Th,
			Tc:           req.Tc,
			Nodes:        req.Nodes,
			MaxIter:      req.MaxIter,
			CompositionP: req.CompositionP,
			CompositionN: req.CompositionN,
			AreaRatio:    req.AreaRatio,
			Currents:     analysis.CurrentRange{Start: req.SweepStart, Stop: req.SweepStop, Increment: req.SweepStep},
		})
		if err != nil {
			return Response{Type: req.Type, Error: err.Error()}
		}
		return Response{Type: req.Type, Data: res}

	case "compositions":
		return Response{Type: req.Type, Data: map[string][]string{
			"P": h.engine.Library().Compositions(material.P),
			"N": h.engine.Library().Compositions(material.N),
		}}
	}

	log.Warnf("no such request type %q", req.Type)
	return Response{Type: req.Type, Error: "no such request type"}
}

func (h *Hub) applyDefaults(req *Request) {
	if req.Th == 0 {
		req.Th = h.cfg.Th
	}
	if req.Tc == 0 {
		req.Tc = h.cfg.Tc
	}
	if req.Nodes == 0 {
		req.Nodes = h.cfg.Nodes
	}
	if req.MaxIter == 0 {
		req.MaxIter = h.cfg.MaxIter
	}
	if req.CompositionP == "" {
		req.CompositionP = h.cfg.CompositionP
	}
	if req.CompositionN == "" {
		req.CompositionN = h.cfg.CompositionN
	}
	if req.AreaRatio == 0 {
		req.AreaRatio = h.cfg.AreaRatio
	}
	if req.SweepStep == 0 {
		req.SweepStart = h.cfg.SweepStart
		req.SweepStop = h.cfg.SweepStop
		req.SweepStep = h.cfg.SweepStep
	}
}
