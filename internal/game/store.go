// Package game implements the concurrent state engine of the gameshow:
// the shared store of players, questions, phase and events, the phase
// state machine that sequences a question through its sub-steps, and the
// scoring rules for the four question types.
package game

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizshow/quizshow-server/internal/config"
)

// Store is the process-wide aggregate of all mutable game state. One
// instance exists per process; it is constructed at startup and passed to
// every handler.
//
// The four guarded fields are independently lockable. Operations needing
// more than one must acquire them in the fixed order
//
//	phase -> questions -> players -> events
//
// to prevent circular wait between concurrent requests. Operations that
// need only a subset must still respect the relative order. The question
// index is atomic and needs no lock.
type Store struct {
	cfg    config.GameConfig
	logger *zap.Logger

	// sessionID identifies this process lifetime in logs and the
	// observer feed.
	sessionID string

	phaseMu sync.RWMutex
	phase   Phase

	questionsMu sync.RWMutex
	questions   []Question

	playersMu sync.RWMutex
	players   []Player

	eventsMu sync.RWMutex
	events   []Event

	// currentQuestion is 1-based once the game is underway; 0 means no
	// question has started yet.
	currentQuestion atomic.Int64
}

// NewStore creates a store holding the given question list, an empty
// roster and an empty event log, positioned before the first question.
func NewStore(cfg config.GameConfig, questions []Question, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		cfg:       cfg,
		logger:    logger,
		sessionID: uuid.NewString(),
		phase:     Phase{Kind: PhaseResults},
		questions: questions,
	}
	logger.Info("game store initialized",
		zap.String("session_id", s.sessionID),
		zap.Int("questions", len(questions)),
		zap.Int64("initial_money", cfg.InitialMoney),
		zap.Int("initial_jokers", cfg.InitialJokers),
	)
	return s
}

// SessionID returns the identifier of this process's game session.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Phase returns the current phase value.
func (s *Store) Phase() Phase {
	s.phaseMu.RLock()
	defer s.phaseMu.RUnlock()
	return s.phase
}

// CurrentQuestion returns the 1-based index of the running question, or 0
// before the first question starts.
func (s *Store) CurrentQuestion() int {
	return int(s.currentQuestion.Load())
}

// QuestionCount returns the number of loaded questions.
func (s *Store) QuestionCount() int {
	s.questionsMu.RLock()
	defer s.questionsMu.RUnlock()
	return len(s.questions)
}

// PlayerSnapshots returns a copy of the full roster.
func (s *Store) PlayerSnapshots() []Player {
	s.playersMu.RLock()
	defer s.playersMu.RUnlock()
	return clonePlayers(s.players)
}

// Events returns a copy of the event log, in order from the beginning.
// It does not advance the state machine; see PollEvents.
func (s *Store) Events() []Event {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// gatePhase fails with ErrPhaseMismatch unless the current phase
// satisfies ok. The gate is checked under its own lock and released
// before the caller mutates other fields, mirroring the per-request
// read-then-act discipline of the action operations.
func (s *Store) gatePhase(ok func(Phase) bool) error {
	s.phaseMu.RLock()
	defer s.phaseMu.RUnlock()
	if !ok(s.phase) {
		return ErrPhaseMismatch
	}
	return nil
}
