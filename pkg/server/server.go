package server

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/websocket"

	"github.com/liuke128/tegsim/internal/config"
	"github.com/liuke128/tegsim/pkg/analysis"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the analysis engine over a websocket endpoint at /ws.
type Server struct {
	engine *analysis.Engine
	cfg    config.Config
}

func New(engine *analysis.Engine, cfg config.Config) *Server {
	return &Server{engine: engine, cfg: cfg}
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("upgrading %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	log.Infof("client connected: %s", r.RemoteAddr)
	NewHub(conn, s.engine, s.cfg).Run()
}

// Run blocks serving websocket clients until the listener fails.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)

	log.Infof("listening on %s", s.cfg.ServerAddr)
	if err := http.ListenAndServe(s.cfg.ServerAddr, mux); err != nil {
		return fmt.Errorf("server: %v", err)
	}
	return nil
}
