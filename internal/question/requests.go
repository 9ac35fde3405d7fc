package question

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. The web client posts form values as
// strings, so both "3" and 3 are accepted. Blank, null or non-numeric input leaves it invalid
// without failing the decode.
type FlexInt struct {
	value int64
	valid bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	f.value, f.valid = n, true
	return nil
}

// Int returns the decoded value and whether one was present and numeric.
func (f FlexInt) Int() (int64, bool) {
	return f.value, f.valid
}

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty FlexInt `json:"difficulty"`
	Category   FlexInt `json:"category"`
}

// NewQuestion converts the request, rejecting missing or non-numeric difficulty and category.
// Text fields are checked by NewQuestion.Validate.
func (r CreateQuestionRequest) NewQuestion() (NewQuestion, error) {
	difficulty, ok := r.Difficulty.Int()
	if !ok {
		return NewQuestion{}, fmt.Errorf("%w: difficulty is required", ErrInvalidQuestion)
	}
	category, ok := r.Category.Int()
	if !ok {
		return NewQuestion{}, fmt.Errorf("%w: category is required", ErrInvalidQuestion)
	}
	return NewQuestion{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   category,
		Difficulty: int(difficulty),
	}, nil
}

// SearchRequest is the body of POST /question.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the quiz scope; ID 0 means all categories.
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoryID validates the quiz scope.
func (r QuizRequest) CategoryID() (int64, error) {
	if r.QuizCategory == nil {
		return 0, fmt.Errorf("%w: quiz_category is required", ErrMalformedRequest)
	}
	id, ok := r.QuizCategory.ID.Int()
	if !ok || id < 0 {
		return 0, fmt.Errorf("%w: quiz_category.id must be a non-negative integer", ErrMalformedRequest)
	}
	return id, nil
}
