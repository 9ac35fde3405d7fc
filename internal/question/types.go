package question

import (
	"fmt"
	"strings"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// DefaultPageSize is used when ServiceOptions leaves PageSize unset.
const DefaultPageSize = 10

// AllCategories is the quiz category id meaning "every question".
const AllCategories int64 = 0

// Question is the formatted payload delivered to clients.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a read-only question grouping.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Page is one page of a question listing plus the metadata the web client renders around it.
type Page struct {
	Questions       []Question
	TotalQuestions  int
	Categories      []Category
	CurrentCategory *Category
}

// NewQuestion carries the fields required to create a question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// Validate rejects blank text and non-positive numbers.
func (n NewQuestion) Validate() error {
	switch {
	case strings.TrimSpace(n.Question) == "":
		return fmt.Errorf("%w: question is required", ErrInvalidQuestion)
	case strings.TrimSpace(n.Answer) == "":
		return fmt.Errorf("%w: answer is required", ErrInvalidQuestion)
	case n.Category <= 0:
		return fmt.Errorf("%w: category must be a positive id", ErrInvalidQuestion)
	case n.Difficulty <= 0 || n.Difficulty > maxDifficulty:
		return fmt.Errorf("%w: difficulty must be between 1 and %d", ErrInvalidQuestion, maxDifficulty)
	}
	return nil
}

// difficulty is stored as SMALLINT
const maxDifficulty = 32767

func toQuestion(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: int(row.Difficulty),
	}
}

func toQuestions(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toQuestion(row))
	}
	return out
}

func toCategories(rows []sqlcgen.Category) []Category {
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.ID, Type: row.Type})
	}
	return out
}
