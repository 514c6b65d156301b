// Package server exposes the game engine over a thin HTTP layer. Every
// endpoint maps 1:1 to one engine operation; a websocket feed mirrors the
// event log to passive observers.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/quizshow/quizshow-server/internal/config"
	"github.com/quizshow/quizshow-server/internal/game"
)

// Server wires the engine, configuration and observer hub together.
type Server struct {
	store  *game.Store
	cfg    *config.Config
	hub    *Hub
	logger *zap.Logger
}

// New creates a server around the given store. The returned server's hub
// must be started with Run (Handler's caller owns the goroutine).
func New(store *game.Store, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:  store,
		cfg:    cfg,
		hub:    NewHub(store.SessionID(), logger),
		logger: logger,
	}
}

// Hub returns the observer hub so the caller can run it.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler builds the route table. The static frontend is mounted last so
// the API paths take precedence.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/joinPlayer", s.handleJoinPlayer)
	mux.HandleFunc("GET /api/getPlayerData", s.handleGetPlayerData)
	mux.HandleFunc("GET /api/betMoney", s.handleBetMoney)
	mux.HandleFunc("GET /api/attackPlayer", s.handleAttackPlayer)
	mux.HandleFunc("GET /api/answerQuestion", s.handleAnswerQuestion)
	mux.HandleFunc("GET /api/getJokerFiftyFifty", s.handleJokerFiftyFifty)
	mux.HandleFunc("GET /api/getGameEvents", s.handleGetGameEvents)
	mux.HandleFunc("POST /api/giveMoney", s.handleGiveMoney)
	mux.HandleFunc("POST /api/setJokers", s.handleSetJokers)
	mux.HandleFunc("GET /api/kickPlayer", s.handleKickPlayer)
	mux.HandleFunc("GET /api/activateNextQuestion", s.handleActivateNextQuestion)
	mux.HandleFunc("GET /api/forceQuestionAnswering", s.handleForceQuestionAnswering)
	mux.HandleFunc("GET /api/forceQuestionResults", s.handleForceQuestionResults)
	mux.HandleFunc("GET /api/setNextQuestion", s.handleSetNextQuestion)
	mux.HandleFunc("POST /api/loadQuestions", s.handleLoadQuestions)
	mux.HandleFunc("GET /api/joinQR", s.handleJoinQR)

	mux.HandleFunc("GET /ws/events", s.hub.ServeWS)

	mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))

	return mux
}

// writeJSON renders a success response.
func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps engine error kinds to client statuses. Gating failures
// surface as 406 so clients can tell "wrong moment" apart from "bad
// request"; everything unrecognized is an internal error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrInvalidInput),
		errors.Is(err, game.ErrNotFound),
		errors.Is(err, game.ErrLoadFailure):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrPhaseMismatch),
		errors.Is(err, game.ErrNoJokersLeft):
		status = http.StatusNotAcceptable
	default:
		s.logger.Error("internal error", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// publishPlayers mirrors the roster to observers after a mutation.
func (s *Server) publishPlayers() {
	s.hub.Broadcast("players", s.store.PlayerSnapshots())
}
