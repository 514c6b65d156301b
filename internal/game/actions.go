package game

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// Join registers a new player under the trimmed name, with the configured
// starting money and jokers. Joining an existing name is a no-op, so
// duplicate and whitespace-padded join requests are harmless. Join is not
// phase-gated; latecomers may enter mid-show.
func (s *Store) Join(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidInput)
	}

	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	for i := range s.players {
		if s.players[i].Name == trimmed {
			return trimmed, nil
		}
	}
	s.players = append(s.players, Player{
		Name:   trimmed,
		Jokers: s.cfg.InitialJokers,
		Money:  s.cfg.InitialMoney,
	})
	s.logger.Info("player joined", zap.String("name", trimmed))
	return trimmed, nil
}

// PlaceBet records a player's bet during the betting stage of a betting
// question. The amount must be at least 1 and at most the player's
// balance. Once every player has bet, the stage is marked ready.
func (s *Store) PlaceBet(name string, amount int64) error {
	if err := s.gatePhase(func(p Phase) bool {
		return p.Kind == PhaseBettingBetting && !p.Ready
	}); err != nil {
		return err
	}

	s.playersMu.Lock()
	player := s.findPlayerLocked(name)
	if player == nil {
		s.playersMu.Unlock()
		return ErrNotFound
	}
	if amount < 1 || amount > player.Money {
		s.playersMu.Unlock()
		return fmt.Errorf("%w: bet must be between 1 and the player's money", ErrInvalidInput)
	}
	player.MoneyBet = amount
	allBet := s.allPlayersLocked(func(p *Player) bool { return p.MoneyBet >= 1 })
	s.playersMu.Unlock()

	if allBet {
		s.markReady(PhaseBettingBetting)
	}
	return nil
}

// SelectOpponent records which player a selector targets during the
// selecting stage of a versus question. Self-selection is rejected; both
// names must exist. Once every player has selected, the stage is marked
// ready.
func (s *Store) SelectOpponent(name, target string) error {
	if err := s.gatePhase(func(p Phase) bool {
		return p.Kind == PhaseVersusSelecting && !p.Ready
	}); err != nil {
		return err
	}
	if name == target {
		return fmt.Errorf("%w: cannot select yourself", ErrInvalidInput)
	}

	s.playersMu.Lock()
	player := s.findPlayerLocked(name)
	if player == nil || s.findPlayerLocked(target) == nil {
		s.playersMu.Unlock()
		return ErrNotFound
	}
	player.VSPlayer = target
	allSelected := s.allPlayersLocked(func(p *Player) bool { return p.VSPlayer != "" })
	s.playersMu.Unlock()

	if allSelected {
		s.markReady(PhaseVersusSelecting)
	}
	return nil
}

// SubmitAnswer records a player's answer during any of the four answering
// sub-phases. Answers are 1-based. Once every player has answered, the
// current answering sub-phase is marked ready.
func (s *Store) SubmitAnswer(name string, answer int) error {
	if err := s.gatePhase(func(p Phase) bool {
		return p.IsAnswering() && !p.Ready
	}); err != nil {
		return err
	}
	if answer < 1 {
		return fmt.Errorf("%w: answer must be >= 1", ErrInvalidInput)
	}

	s.playersMu.Lock()
	player := s.findPlayerLocked(name)
	if player == nil {
		s.playersMu.Unlock()
		return ErrNotFound
	}
	player.Answer = answer
	allAnswered := s.allPlayersLocked(func(p *Player) bool { return p.Answer >= 1 })
	s.playersMu.Unlock()

	if allAnswered {
		// Re-match against the phase as it is now; the answering
		// sub-phase cannot have changed kind without a Results pass,
		// but a concurrent force may already have flipped it.
		s.phaseMu.Lock()
		if s.phase.IsAnswering() {
			s.phase.Ready = true
		}
		s.phaseMu.Unlock()
	}
	return nil
}

// FiftyFifty spends one of the player's jokers and returns two incorrect
// option indices for the current question, drawn without replacement.
// Only available while answering normal and betting questions.
//
// The draw assumes the four-option question format; questions with a
// different option count are not rejected at load time.
func (s *Store) FiftyFifty(name string) ([]int, error) {
	if err := s.gatePhase(func(p Phase) bool {
		return (p.Kind == PhaseNormalAnswering || p.Kind == PhaseBettingAnswering) && !p.Ready
	}); err != nil {
		return nil, err
	}

	current := int(s.currentQuestion.Load())
	s.questionsMu.RLock()
	correct := s.questions[current-1].CorrectAnswer
	s.questionsMu.RUnlock()

	choices := make([]int, 0, 3)
	for option := 1; option <= 4; option++ {
		if option != correct {
			choices = append(choices, option)
		}
	}
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	wrong := choices[:2]

	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	player := s.findPlayerLocked(name)
	if player == nil {
		return nil, ErrNotFound
	}
	if player.Jokers < 1 {
		return nil, ErrNoJokersLeft
	}
	player.Jokers--
	s.logger.Debug("fifty-fifty joker used",
		zap.String("name", name),
		zap.Int("jokers_left", player.Jokers),
	)
	return wrong, nil
}

// Kick removes a player from the roster. Not phase-gated.
func (s *Store) Kick(name string) error {
	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	for i := range s.players {
		if s.players[i].Name == name {
			s.players = append(s.players[:i], s.players[i+1:]...)
			s.logger.Info("player kicked", zap.String("name", name))
			return nil
		}
	}
	return ErrNotFound
}

// GiveMoney adjusts a player's balance by delta (negative removes money)
// and returns the new balance. A moderator override, not phase-gated.
func (s *Store) GiveMoney(name string, delta int64) (int64, error) {
	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	player := s.findPlayerLocked(name)
	if player == nil {
		return 0, ErrNotFound
	}
	player.Money += delta
	s.logger.Info("money adjusted",
		zap.String("name", name),
		zap.Int64("delta", delta),
		zap.Int64("money", player.Money),
	)
	return player.Money, nil
}

// SetJokers sets a player's joker count. A moderator override, not
// phase-gated.
func (s *Store) SetJokers(name string, jokers int) error {
	if jokers < 0 {
		return fmt.Errorf("%w: joker count must be non-negative", ErrInvalidInput)
	}
	s.playersMu.Lock()
	defer s.playersMu.Unlock()
	player := s.findPlayerLocked(name)
	if player == nil {
		return ErrNotFound
	}
	player.Jokers = jokers
	return nil
}

// RequestNextQuestion marks the results phase ready so the next poll
// advances to the following question. It is the moderator's trigger to
// move the show along; a no-op if the phase is already ready.
func (s *Store) RequestNextQuestion() error {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if s.phase.Kind != PhaseResults {
		return ErrPhaseMismatch
	}
	s.phase.Ready = true
	return nil
}

// ForceBettingOrSelectingReady ends the betting or selecting stage early,
// whichever is current. Used when a player stalls; the moderator is the
// liveness fallback.
func (s *Store) ForceBettingOrSelectingReady() error {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if (s.phase.Kind == PhaseBettingBetting || s.phase.Kind == PhaseVersusSelecting) && !s.phase.Ready {
		s.phase.Ready = true
		s.logger.Info("stage forced ready", zap.Stringer("phase", s.phase.Kind))
		return nil
	}
	return ErrPhaseMismatch
}

// ForceAnsweringReady ends any answering sub-phase early.
func (s *Store) ForceAnsweringReady() error {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if s.phase.IsAnswering() && !s.phase.Ready {
		s.phase.Ready = true
		s.logger.Info("stage forced ready", zap.Stringer("phase", s.phase.Kind))
		return nil
	}
	return ErrPhaseMismatch
}

// JumpToQuestion points the game at question n, so the next advancement
// begins exactly that question. Legal only between questions (results,
// not yet ready) or after the game ended. Returns the previous 1-based
// index. The phase lock is held for the whole operation so no concurrent
// advancement can interleave.
func (s *Store) JumpToQuestion(n int) (int, error) {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if !s.jumpAllowedLocked() {
		return 0, ErrPhaseMismatch
	}

	s.questionsMu.RLock()
	count := len(s.questions)
	s.questionsMu.RUnlock()
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: question number must be in [1, %d]", ErrInvalidInput, count)
	}

	previous := int(s.currentQuestion.Swap(int64(n - 1)))
	s.phase = Phase{Kind: PhaseResults}
	s.logger.Info("jumped to question", zap.Int("question", n), zap.Int("previous", previous))
	return previous, nil
}

// ReplaceQuestions swaps in a freshly loaded question list and rewinds
// the game to before the first question. Legal only between questions or
// after the game ended, which prevents a reload mid-question. Returns the
// new question count.
func (s *Store) ReplaceQuestions(questions []Question) (int, error) {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if !s.jumpAllowedLocked() {
		return 0, ErrPhaseMismatch
	}

	s.questionsMu.Lock()
	s.questions = questions
	count := len(s.questions)
	s.questionsMu.Unlock()

	s.currentQuestion.Store(0)
	s.phase = Phase{Kind: PhaseResults}
	s.logger.Info("question list replaced", zap.Int("questions", count))
	return count, nil
}

// jumpAllowedLocked reports whether admin question navigation is legal.
// Callers must hold the phase lock.
func (s *Store) jumpAllowedLocked() bool {
	if s.phase.Kind == PhaseGameEnding {
		return true
	}
	return s.phase.Kind == PhaseResults && !s.phase.Ready
}

// markReady flips the given phase kind to ready if it is still current.
func (s *Store) markReady(kind PhaseKind) {
	s.phaseMu.Lock()
	defer s.phaseMu.Unlock()
	if s.phase.Kind == kind {
		s.phase.Ready = true
	}
}

// findPlayerLocked returns the roster entry with the given name, or nil.
// Callers must hold the players lock.
func (s *Store) findPlayerLocked(name string) *Player {
	for i := range s.players {
		if s.players[i].Name == name {
			return &s.players[i]
		}
	}
	return nil
}

// allPlayersLocked reports whether every player satisfies cond. The scan
// runs entirely under the players lock already held by the caller, so it
// is linearizable with respect to concurrent individual writes.
func (s *Store) allPlayersLocked(cond func(*Player) bool) bool {
	for i := range s.players {
		if !cond(&s.players[i]) {
			return false
		}
	}
	return true
}
