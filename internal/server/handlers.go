package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/quizshow/quizshow-server/internal/game"
)

func (s *Server) handleJoinPlayer(w http.ResponseWriter, r *http.Request) {
	name, err := s.store.Join(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	s.writeJSON(w, map[string]string{"name": name})
}

func (s *Server) handleGetPlayerData(w http.ResponseWriter, r *http.Request) {
	// Full roster including submitted answers; moderator/board use only.
	s.writeJSON(w, s.store.PlayerSnapshots())
}

func (s *Server) handleBetMoney(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseInt(q.Get("money_bet"), 10, 64)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: money_bet must be an integer", game.ErrInvalidInput))
		return
	}
	if err := s.store.PlaceBet(q.Get("name"), amount); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAttackPlayer(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := s.store.SelectOpponent(q.Get("name"), q.Get("vs_player")); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	answer, err := strconv.Atoi(q.Get("answer"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: answer must be an integer", game.ErrInvalidInput))
		return
	}
	if err := s.store.SubmitAnswer(q.Get("name"), answer); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleJokerFiftyFifty(w http.ResponseWriter, r *http.Request) {
	wrong, err := s.store.FiftyFifty(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, wrong)
}

// handleGetGameEvents is the poll every observer drives the show with: it
// advances the state machine when the current phase is ready, then
// returns the full event log.
func (s *Server) handleGetGameEvents(w http.ResponseWriter, r *http.Request) {
	events := s.store.PollEvents()
	s.hub.Broadcast("events", events)
	s.writeJSON(w, events)
}

type giveMoneyRequest struct {
	Name  string `json:"name"`
	Money int64  `json:"money"`
}

func (s *Server) handleGiveMoney(w http.ResponseWriter, r *http.Request) {
	var req giveMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", game.ErrInvalidInput, err))
		return
	}
	money, err := s.store.GiveMoney(req.Name, req.Money)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	s.writeJSON(w, giveMoneyRequest{Name: req.Name, Money: money})
}

type setJokersRequest struct {
	Name   string `json:"name"`
	Jokers int    `json:"jokers"`
}

func (s *Server) handleSetJokers(w http.ResponseWriter, r *http.Request) {
	var req setJokersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", game.ErrInvalidInput, err))
		return
	}
	if err := s.store.SetJokers(req.Name, req.Jokers); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	s.writeJSON(w, req)
}

func (s *Server) handleKickPlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Kick(r.URL.Query().Get("name")); err != nil {
		s.writeError(w, err)
		return
	}
	s.publishPlayers()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleActivateNextQuestion(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RequestNextQuestion(); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleForceQuestionAnswering(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ForceBettingOrSelectingReady(); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleForceQuestionResults(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ForceAnsweringReady(); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleSetNextQuestion(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: number must be an integer", game.ErrInvalidInput))
		return
	}
	previous, err := s.store.JumpToQuestion(number)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]int{"previous_question": previous})
}

type loadQuestionsRequest struct {
	Filename string `json:"filename"`
}

// handleLoadQuestions reloads the question list from a file inside the
// configured questions directory. The filename is stripped to its base so
// requests cannot escape the directory.
func (s *Server) handleLoadQuestions(w http.ResponseWriter, r *http.Request) {
	var req loadQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", game.ErrInvalidInput, err))
		return
	}

	questions, err := game.LoadQuestions(filepath.Join(s.cfg.QuestionsDir, filepath.Base(req.Filename)))
	if err != nil {
		s.writeError(w, err)
		return
	}
	count, err := s.store.ReplaceQuestions(questions)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]int{"questions": count})
}
