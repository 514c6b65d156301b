package game

// Event names as they appear in the event log.
const (
	EventBeginNormalAnswering     = "BeginNormalAnswering"
	EventBeginBettingBetting      = "BeginBettingBetting"
	EventBeginBettingAnswering    = "BeginBettingAnswering"
	EventBeginEstimationAnswering = "BeginEstimationAnswering"
	EventBeginVersusSelecting     = "BeginVersusSelecting"
	EventBeginVersusAnswering     = "BeginVersusAnswering"
	EventShowResults              = "ShowResults"
	EventGameEnding               = "GameEnding"
)

// Event is one immutable record of the append-only event log. IDs form a
// dense, strictly increasing sequence starting at 0. Phase advancement is
// the only writer; the full log is always readable in order.
type Event struct {
	ID      uint64 `json:"id"`
	Name    string `json:"event_name"`
	Payload any    `json:"event"`
}

// BeginNormalAnsweringPayload opens a normal question.
type BeginNormalAnsweringPayload struct {
	QuestionType    QuestionType `json:"question_type"`
	CurrentQuestion int          `json:"current_question"`
	Category        string       `json:"category"`
	Question        string       `json:"question"`
	Answers         []string     `json:"answers"`
}

// BeginBettingBettingPayload opens the betting stage of a betting
// question; prompt and options stay hidden until bets are in.
type BeginBettingBettingPayload struct {
	QuestionType    QuestionType `json:"question_type"`
	CurrentQuestion int          `json:"current_question"`
	Category        string       `json:"category"`
}

// BeginBettingAnsweringPayload reveals a betting question after all bets
// are placed.
type BeginBettingAnsweringPayload struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// BeginEstimationAnsweringPayload opens an estimation question; there are
// no options to choose from.
type BeginEstimationAnsweringPayload struct {
	QuestionType    QuestionType `json:"question_type"`
	CurrentQuestion int          `json:"current_question"`
	Category        string       `json:"category"`
	Question        string       `json:"question"`
}

// BeginVersusSelectingPayload opens the opponent-selection stage of a
// versus question.
type BeginVersusSelectingPayload struct {
	QuestionType    QuestionType `json:"question_type"`
	CurrentQuestion int          `json:"current_question"`
	Category        string       `json:"category"`
}

// BeginVersusAnsweringPayload reveals a versus question after all
// opponents are selected.
type BeginVersusAnsweringPayload struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// ShowResultsPayload carries the settlement of a question: the correct
// answer plus the roster snapshots taken immediately before and after
// scoring.
type ShowResultsPayload struct {
	CorrectAnswer   int      `json:"correct_answer"`
	PreviousPlayers []Player `json:"previous_player_data"`
	Players         []Player `json:"player_data"`
}

// GameEndingPayload carries the final roster once the question list is
// exhausted.
type GameEndingPayload struct {
	Players []Player `json:"player_data"`
}

// appendEvent appends a new event with the next dense id. Callers must
// hold the events write lock.
func (s *Store) appendEvent(name string, payload any) Event {
	var id uint64
	if n := len(s.events); n > 0 {
		id = s.events[n-1].ID + 1
	}
	ev := Event{ID: id, Name: name, Payload: payload}
	s.events = append(s.events, ev)
	return ev
}
