package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// QuestionType tags the four gameshow question formats. The values match
// the question-file format on disk.
type QuestionType string

const (
	QuestionNormal     QuestionType = "NormalQuestion"
	QuestionBetting    QuestionType = "BettingQuestion"
	QuestionEstimation QuestionType = "EstimationQuestion"
	QuestionVersus     QuestionType = "VersusQuestion"
)

// Question is one entry of the loaded question list, immutable once
// loaded. CorrectAnswer is 1-based; for estimation questions it is the
// numeric value to estimate rather than an option index.
type Question struct {
	Type          QuestionType `json:"question_type"`
	Category      string       `json:"category"`
	Question      string       `json:"question"`
	Answers       []string     `json:"answers"`
	CorrectAnswer int          `json:"correct_answer"`
}

// LoadQuestions reads an ordered question list from a JSON file. Any read
// or decode problem is reported as ErrLoadFailure.
//
// The option count per question is not validated here; the fifty-fifty
// joker assumes the four-option format (see Store.FiftyFifty).
func LoadQuestions(filename string) ([]Question, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}

	for i, q := range questions {
		switch q.Type {
		case QuestionNormal, QuestionBetting, QuestionEstimation, QuestionVersus:
		default:
			return nil, fmt.Errorf("%w: question %d has unknown type %q", ErrLoadFailure, i+1, q.Type)
		}
	}

	return questions, nil
}
