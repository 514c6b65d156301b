package game

import "go.uber.org/zap"

// Advance inspects the current phase and, if it is marked ready, performs
// exactly one transition: preparing the next question, revealing a
// betting/versus question, or settling scores. Each transition appends
// one event to the log. When the phase is not ready (or the game has
// ended) Advance is a no-op, so repeated calls are safe.
//
// Advance is never called by the action operations themselves; it runs on
// the poll path (see PollEvents), which is the only mechanism that moves
// the game forward.
//
// The phase lock is held for the entire transition. Additional locks are
// acquired in the fixed order questions -> players -> events.
func (s *Store) Advance() {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()

	if s.phase.Kind == PhaseGameEnding || !s.phase.Ready {
		return
	}

	switch s.phase.Kind {
	case PhaseResults:
		s.beginNextQuestionLocked()
	case PhaseBettingBetting:
		s.revealQuestionLocked(EventBeginBettingAnswering, PhaseBettingAnswering)
	case PhaseVersusSelecting:
		s.revealQuestionLocked(EventBeginVersusAnswering, PhaseVersusAnswering)
	case PhaseNormalAnswering, PhaseBettingAnswering, PhaseEstimationAnswering, PhaseVersusAnswering:
		s.settleQuestionLocked()
	}
}

// PollEvents advances the state machine if it is ready and returns the
// full event log. This is the read every observer drives the show with:
// repeated polling is idempotent while nothing is ready, but it is the
// only path that advances the game.
func (s *Store) PollEvents() []Event {
	s.Advance()
	return s.Events()
}

// beginNextQuestionLocked moves from a finished results phase to the next
// question, or ends the game when the list is exhausted. Callers must
// hold the phase write lock.
func (s *Store) beginNextQuestionLocked() {
	current := int(s.currentQuestion.Add(1))

	s.questionsMu.RLock()
	defer s.questionsMu.RUnlock()

	if current > len(s.questions) {
		s.playersMu.RLock()
		final := clonePlayers(s.players)
		s.playersMu.RUnlock()

		s.eventsMu.Lock()
		ev := s.appendEvent(EventGameEnding, GameEndingPayload{Players: final})
		s.eventsMu.Unlock()

		s.phase = Phase{Kind: PhaseGameEnding}
		s.logger.Info("game ended", zap.Uint64("event_id", ev.ID))
		return
	}

	question := s.questions[current-1]

	// A fresh question voids all bets, selections and answers.
	s.playersMu.Lock()
	for i := range s.players {
		s.players[i].MoneyBet = 0
		s.players[i].VSPlayer = ""
		s.players[i].Answer = 0
	}
	s.playersMu.Unlock()

	var name string
	var payload any
	switch question.Type {
	case QuestionBetting:
		name = EventBeginBettingBetting
		payload = BeginBettingBettingPayload{
			QuestionType:    question.Type,
			CurrentQuestion: current,
			Category:        question.Category,
		}
	case QuestionEstimation:
		name = EventBeginEstimationAnswering
		payload = BeginEstimationAnsweringPayload{
			QuestionType:    question.Type,
			CurrentQuestion: current,
			Category:        question.Category,
			Question:        question.Question,
		}
	case QuestionVersus:
		name = EventBeginVersusSelecting
		payload = BeginVersusSelectingPayload{
			QuestionType:    question.Type,
			CurrentQuestion: current,
			Category:        question.Category,
		}
	default:
		name = EventBeginNormalAnswering
		payload = BeginNormalAnsweringPayload{
			QuestionType:    question.Type,
			CurrentQuestion: current,
			Category:        question.Category,
			Question:        question.Question,
			Answers:         question.Answers,
		}
	}

	s.eventsMu.Lock()
	s.appendEvent(name, payload)
	s.eventsMu.Unlock()

	s.phase = Phase{Kind: initialPhase(question.Type)}
	s.logger.Info("question started",
		zap.Int("question", current),
		zap.String("type", string(question.Type)),
	)
}

// revealQuestionLocked publishes the prompt and options of the current
// question once its preliminary stage (betting or selecting) finished.
// Callers must hold the phase write lock.
func (s *Store) revealQuestionLocked(eventName string, next PhaseKind) {
	current := int(s.currentQuestion.Load())

	s.questionsMu.RLock()
	question := s.questions[current-1]
	s.questionsMu.RUnlock()

	var payload any
	if eventName == EventBeginVersusAnswering {
		payload = BeginVersusAnsweringPayload{Question: question.Question, Answers: question.Answers}
	} else {
		payload = BeginBettingAnsweringPayload{Question: question.Question, Answers: question.Answers}
	}

	s.eventsMu.Lock()
	s.appendEvent(eventName, payload)
	s.eventsMu.Unlock()

	s.phase = Phase{Kind: next}
}

// settleQuestionLocked runs the scoring for the finished answering phase
// and publishes the results. Callers must hold the phase write lock.
func (s *Store) settleQuestionLocked() {
	current := int(s.currentQuestion.Load())

	s.questionsMu.RLock()
	correct := s.questions[current-1].CorrectAnswer
	s.questionsMu.RUnlock()

	s.playersMu.Lock()
	var before, after []Player
	switch s.phase.Kind {
	case PhaseBettingAnswering:
		before, after = scoreBetting(s.players, correct)
	case PhaseEstimationAnswering:
		before, after = scoreEstimation(s.players, correct, s.cfg.EstimationReward)
	case PhaseVersusAnswering:
		before, after = scoreVersus(s.players, correct)
	default:
		before, after = scoreNormal(s.players, correct, s.cfg.NormalReward)
	}
	s.playersMu.Unlock()

	s.eventsMu.Lock()
	s.appendEvent(EventShowResults, ShowResultsPayload{
		CorrectAnswer:   correct,
		PreviousPlayers: before,
		Players:         after,
	})
	s.eventsMu.Unlock()

	s.phase = Phase{Kind: PhaseResults}
	s.logger.Info("question settled", zap.Int("question", current))
}
