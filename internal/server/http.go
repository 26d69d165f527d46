package server

import (
	"encoding/json"
	"net/http"

	"pirate-server/internal/engine"
	"pirate-server/internal/version"
	"pirate-server/pkg/logger"
)

type Server struct {
	Service *engine.GameService
	Addr    string
}

func New(service *engine.GameService, addr string) *Server {
	return &Server{Service: service, Addr: addr}
}

// Run регистрирует роуты и запускает HTTP сервер.
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	// Read-only запросный срез: фронтенд опрашивает его асинхронно,
	// это безопасно между командами.
	mux.HandleFunc("/status", enableCORS(s.handleStatus))
	mux.HandleFunc("/scan", enableCORS(s.handleScan))
	mux.HandleFunc("/targets", enableCORS(s.handleTargets))
	mux.HandleFunc("/moves", enableCORS(s.handleMoves))

	logger.Log.Infof("Pirate server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Service, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, version.Get())
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Service.Status())
}

func (s *Server) handleScan(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Service.ScanSurroundings(0))
}

func (s *Server) handleTargets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Service.TargetsInRange())
}

func (s *Server) handleMoves(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Service.PossibleMoves())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode response")
	}
}
