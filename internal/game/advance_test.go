package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimationQuestion(correct int) Question {
	return Question{
		Type:          QuestionEstimation,
		Category:      "Geography",
		Question:      "How many?",
		CorrectAnswer: correct,
	}
}

func TestAdvanceIsNoOpWhenNotReady(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1)})

	s.Advance()
	s.Advance()

	assert.Equal(t, Phase{Kind: PhaseResults}, s.Phase())
	assert.Empty(t, s.Events())
	assert.Equal(t, 0, s.CurrentQuestion())
}

func TestPollEventsIsIdempotentWhileNotReady(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)
	require.NoError(t, s.RequestNextQuestion())

	first := s.PollEvents()
	second := s.PollEvents()

	require.Len(t, first, 1, "one advancement per readiness")
	assert.Equal(t, first, second)
	assert.Equal(t, Phase{Kind: PhaseNormalAnswering}, s.Phase())
}

func TestNormalQuestionFullRound(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(2)})
	_, err := s.Join("Ann")
	require.NoError(t, err)
	_, err = s.Join("Bob")
	require.NoError(t, err)

	startQuestion(t, s)
	assert.Equal(t, 1, s.CurrentQuestion())

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventBeginNormalAnswering, events[0].Name)
	payload, ok := events[0].Payload.(BeginNormalAnsweringPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.CurrentQuestion)
	assert.Equal(t, "History", payload.Category)
	assert.Equal(t, []string{"a", "b", "c", "d"}, payload.Answers)

	require.NoError(t, s.SubmitAnswer("Ann", 2))
	require.NoError(t, s.SubmitAnswer("Bob", 1))
	s.Advance()

	events = s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventShowResults, events[1].Name)
	results, ok := events[1].Payload.(ShowResultsPayload)
	require.True(t, ok)
	assert.Equal(t, 2, results.CorrectAnswer)
	assert.Equal(t, int64(500), results.PreviousPlayers[0].Money)
	assert.Equal(t, int64(1000), results.Players[0].Money)
	assert.Equal(t, int64(500), results.Players[1].Money)
	assert.Equal(t, Phase{Kind: PhaseResults}, s.Phase())
}

func TestBettingQuestionPipeline(t *testing.T) {
	s := newTestStore(t, []Question{bettingQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	assert.Equal(t, Phase{Kind: PhaseBettingBetting}, s.Phase())

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventBeginBettingBetting, events[0].Name)
	begin, ok := events[0].Payload.(BeginBettingBettingPayload)
	require.True(t, ok)
	assert.Equal(t, "Sports", begin.Category)

	require.NoError(t, s.PlaceBet("Ann", 300))
	s.Advance()
	assert.Equal(t, Phase{Kind: PhaseBettingAnswering}, s.Phase())

	events = s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventBeginBettingAnswering, events[1].Name)
	reveal, ok := events[1].Payload.(BeginBettingAnsweringPayload)
	require.True(t, ok)
	assert.Equal(t, "Which?", reveal.Question)
	assert.Equal(t, []string{"a", "b", "c", "d"}, reveal.Answers)

	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()

	events = s.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventShowResults, events[2].Name)
	assert.Equal(t, int64(800), s.PlayerSnapshots()[0].Money)
}

func TestEstimationQuestionPipeline(t *testing.T) {
	s := newTestStore(t, []Question{estimationQuestion(50)})
	_, err := s.Join("Ann")
	require.NoError(t, err)
	_, err = s.Join("Bob")
	require.NoError(t, err)

	startQuestion(t, s)
	assert.Equal(t, Phase{Kind: PhaseEstimationAnswering}, s.Phase())

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventBeginEstimationAnswering, events[0].Name)

	require.NoError(t, s.SubmitAnswer("Ann", 48))
	require.NoError(t, s.SubmitAnswer("Bob", 10))
	s.Advance()

	players := s.PlayerSnapshots()
	assert.Equal(t, int64(1500), players[0].Money)
	assert.Equal(t, int64(500), players[1].Money)
}

func TestVersusQuestionPipeline(t *testing.T) {
	s := newTestStore(t, []Question{versusQuestion(2)})
	_, err := s.Join("Ann")
	require.NoError(t, err)
	_, err = s.Join("Bob")
	require.NoError(t, err)

	startQuestion(t, s)
	assert.Equal(t, Phase{Kind: PhaseVersusSelecting}, s.Phase())

	require.NoError(t, s.SelectOpponent("Ann", "Bob"))
	require.NoError(t, s.SelectOpponent("Bob", "Ann"))
	s.Advance()
	assert.Equal(t, Phase{Kind: PhaseVersusAnswering}, s.Phase())

	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventBeginVersusAnswering, events[1].Name)

	require.NoError(t, s.SubmitAnswer("Ann", 2))
	require.NoError(t, s.SubmitAnswer("Bob", 1))
	s.Advance()

	players := s.PlayerSnapshots()
	assert.Equal(t, int64(1000), players[0].Money, "Bob's wrong attack doubles Ann")
	assert.Equal(t, int64(250), players[1].Money, "Ann's correct attack halves Bob")
}

func TestNewQuestionResetsSubmissions(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1), normalQuestion(2)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()

	startQuestion(t, s)
	p := s.PlayerSnapshots()[0]
	assert.Zero(t, p.Answer)
	assert.Zero(t, p.MoneyBet)
	assert.Empty(t, p.VSPlayer)
}

func TestGameEndsAfterLastQuestion(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()

	require.NoError(t, s.RequestNextQuestion())
	s.Advance()

	assert.Equal(t, Phase{Kind: PhaseGameEnding}, s.Phase())
	events := s.Events()
	final := events[len(events)-1]
	assert.Equal(t, EventGameEnding, final.Name)
	ending, ok := final.Payload.(GameEndingPayload)
	require.True(t, ok)
	require.Len(t, ending.Players, 1)
	assert.Equal(t, int64(1000), ending.Players[0].Money)

	// The terminal state never advances further.
	before := len(s.Events())
	s.Advance()
	assert.Len(t, s.Events(), before)
}

func TestEventIDsAreDense(t *testing.T) {
	s := newTestStore(t, []Question{bettingQuestion(1), normalQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	require.NoError(t, s.PlaceBet("Ann", 100))
	s.Advance()
	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()
	startQuestion(t, s)
	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()
	require.NoError(t, s.RequestNextQuestion())
	s.Advance()

	events := s.Events()
	require.Len(t, events, 6)
	for i, ev := range events {
		assert.Equal(t, uint64(i), ev.ID)
	}
}

func TestJumpToQuestion(t *testing.T) {
	qs := []Question{normalQuestion(1), bettingQuestion(1), estimationQuestion(10)}
	s := newTestStore(t, qs)
	_, err := s.Join("Ann")
	require.NoError(t, err)

	_, err = s.JumpToQuestion(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.JumpToQuestion(4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	previous, err := s.JumpToQuestion(3)
	require.NoError(t, err)
	assert.Equal(t, 0, previous)

	startQuestion(t, s)
	assert.Equal(t, 3, s.CurrentQuestion())
	assert.Equal(t, Phase{Kind: PhaseEstimationAnswering}, s.Phase())

	// Mid-question jumps are rejected.
	_, err = s.JumpToQuestion(1)
	assert.ErrorIs(t, err, ErrPhaseMismatch)
}

func TestJumpToQuestionAfterGameEnd(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()
	require.NoError(t, s.RequestNextQuestion())
	s.Advance()
	require.Equal(t, Phase{Kind: PhaseGameEnding}, s.Phase())

	previous, err := s.JumpToQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 2, previous, "index had walked past the end")
	assert.Equal(t, Phase{Kind: PhaseResults}, s.Phase())

	startQuestion(t, s)
	assert.Equal(t, 1, s.CurrentQuestion())
}

func TestReplaceQuestions(t *testing.T) {
	s := newTestStore(t, []Question{normalQuestion(1)})
	_, err := s.Join("Ann")
	require.NoError(t, err)

	startQuestion(t, s)
	_, err = s.ReplaceQuestions([]Question{bettingQuestion(1)})
	assert.ErrorIs(t, err, ErrPhaseMismatch, "no reload mid-question")

	require.NoError(t, s.SubmitAnswer("Ann", 1))
	s.Advance()

	count, err := s.ReplaceQuestions([]Question{bettingQuestion(1), versusQuestion(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, s.CurrentQuestion())
	assert.Equal(t, Phase{Kind: PhaseResults}, s.Phase())

	startQuestion(t, s)
	assert.Equal(t, Phase{Kind: PhaseBettingBetting}, s.Phase())
}
