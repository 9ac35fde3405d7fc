package repository

import (
	"context"
	"strings"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int64) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access. Every listing is ordered by id.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question.
func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	return r.store.ListQuestions(ctx)
}

// ListByCategory returns the questions filed under one category.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]sqlcgen.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

// Search matches term as a case-insensitive substring of the question text. LIKE wildcards in
// term are matched literally.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	return r.store.SearchQuestions(ctx, escapeLike(term))
}

// Insert stores a new question and returns the persisted row.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question. pgx.ErrNoRows is returned when no row matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.store.DeleteQuestion(ctx, id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
