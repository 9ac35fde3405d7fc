package repository

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

func sampleQuestion(id, category int64) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   "Question " + string(rune('A'+id%26)),
		Answer:     "Answer",
		Category:   category,
		Difficulty: 1,
	}
}
