package question

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type stubQuestionRepo struct {
	rows    []sqlcgen.Question
	err     error
	inserts []sqlcgen.InsertQuestionParams
	deleted []int64
}

func (s *stubQuestionRepo) List(ctx context.Context) ([]sqlcgen.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubQuestionRepo) ListByCategory(ctx context.Context, categoryID int64) ([]sqlcgen.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []sqlcgen.Question
	for _, row := range s.rows {
		if row.Category == categoryID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubQuestionRepo) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []sqlcgen.Question
	for _, row := range s.rows {
		if strings.Contains(strings.ToLower(row.Question), strings.ToLower(term)) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubQuestionRepo) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	if s.err != nil {
		return sqlcgen.Question{}, s.err
	}
	s.inserts = append(s.inserts, params)
	row := sqlcgen.Question{
		ID:         int64(len(s.rows) + 1),
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	s.rows = append(s.rows, row)
	return row, nil
}

func (s *stubQuestionRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	for i, row := range s.rows {
		if row.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			s.deleted = append(s.deleted, id)
			return id, nil
		}
	}
	return 0, pgx.ErrNoRows
}

type stubCategoryRepo struct {
	rows []sqlcgen.Category
	err  error
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]sqlcgen.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubCategoryRepo) Get(ctx context.Context, id int64) (sqlcgen.Category, error) {
	if s.err != nil {
		return sqlcgen.Category{}, s.err
	}
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func seededCategories() *stubCategoryRepo {
	return &stubCategoryRepo{rows: []sqlcgen.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}}
}

// seededQuestions returns n questions; odd ids are Science, even ids are Art.
func seededQuestions(n int) *stubQuestionRepo {
	repo := &stubQuestionRepo{}
	for i := 1; i <= n; i++ {
		category := int64(1)
		if i%2 == 0 {
			category = 2
		}
		repo.rows = append(repo.rows, sqlcgen.Question{
			ID:         int64(i),
			Question:   "Question number " + string(rune('a'+i%26)),
			Answer:     "Answer",
			Category:   category,
			Difficulty: int16(1 + i%5),
		})
	}
	return repo
}

func newTestService(questions *stubQuestionRepo, categories *stubCategoryRepo) *Service {
	return NewService(questions, categories, ServiceOptions{Random: fixedSource(0)})
}

func TestListQuestionsPaginates(t *testing.T) {
	svc := newTestService(seededQuestions(25), seededCategories())

	page, err := svc.ListQuestions(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 5)
	assert.Equal(t, int64(21), page.Questions[0].ID)
	assert.Equal(t, int64(25), page.Questions[4].ID)
	assert.Equal(t, 25, page.TotalQuestions)
	assert.Len(t, page.Categories, 3)
	require.NotNil(t, page.CurrentCategory)
	assert.Equal(t, "Science", page.CurrentCategory.Type)
}

func TestListQuestionsEmptyPageIsNotFound(t *testing.T) {
	svc := newTestService(&stubQuestionRepo{}, seededCategories())

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPageNotFound)

	svc = newTestService(seededQuestions(5), seededCategories())
	_, err = svc.ListQuestions(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestListQuestionsStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := newTestService(&stubQuestionRepo{err: boom}, seededCategories())

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrPageNotFound)
}

func TestSearchQuestionsIsCaseInsensitiveAndNeverNotFound(t *testing.T) {
	repo := &stubQuestionRepo{rows: []sqlcgen.Question{
		{ID: 1, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 2, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	}}
	svc := newTestService(repo, seededCategories())

	page, err := svc.SearchQuestions(context.Background(), "LAKE", 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, int64(1), page.Questions[0].ID)
	assert.Equal(t, 1, page.TotalQuestions)

	page, err = svc.SearchQuestions(context.Background(), "Victoria", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Questions, "answers are not searched")
	assert.Equal(t, 0, page.TotalQuestions)
}

func TestCategoryQuestions(t *testing.T) {
	svc := newTestService(seededQuestions(6), seededCategories())

	page, err := svc.CategoryQuestions(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalQuestions)
	for _, q := range page.Questions {
		assert.Equal(t, int64(2), q.Category)
	}
	require.NotNil(t, page.CurrentCategory)
	assert.Equal(t, "Art", page.CurrentCategory.Type)

	_, err = svc.CategoryQuestions(context.Background(), 1000, 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateQuestion(t *testing.T) {
	repo := &stubQuestionRepo{}
	svc := newTestService(repo, seededCategories())

	created, err := svc.CreateQuestion(context.Background(), NewQuestion{
		Question:   "What is the heaviest organ in the human body?",
		Answer:     "The Liver",
		Category:   1,
		Difficulty: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 4, created.Difficulty)
	require.Len(t, repo.inserts, 1)
	assert.Equal(t, int16(4), repo.inserts[0].Difficulty)
}

func TestCreateQuestionRejectsBeforeWrite(t *testing.T) {
	repo := &stubQuestionRepo{}
	svc := newTestService(repo, seededCategories())

	_, err := svc.CreateQuestion(context.Background(), NewQuestion{Question: "Q", Answer: "", Category: 1, Difficulty: 1})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = svc.CreateQuestion(context.Background(), NewQuestion{Question: "Q", Answer: "A", Category: 99, Difficulty: 1})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	assert.Empty(t, repo.inserts)
}

func TestDeleteQuestion(t *testing.T) {
	repo := seededQuestions(3)
	svc := newTestService(repo, seededCategories())

	id, err := svc.DeleteQuestion(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.Len(t, repo.rows, 2)

	_, err = svc.DeleteQuestion(context.Background(), 2)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	boom := errors.New("deadlock detected")
	svc = newTestService(&stubQuestionRepo{err: boom}, seededCategories())
	_, err = svc.DeleteQuestion(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrQuestionNotFound)
}

func TestNextQuizQuestionScopes(t *testing.T) {
	svc := newTestService(seededQuestions(6), seededCategories())

	q, err := svc.NextQuizQuestion(context.Background(), AllCategories, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), q.ID)

	q, err = svc.NextQuizQuestion(context.Background(), 2, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), q.ID)
	assert.Equal(t, int64(2), q.Category)
}

func TestNextQuizQuestionExhausted(t *testing.T) {
	svc := newTestService(seededQuestions(4), seededCategories())

	_, err := svc.NextQuizQuestion(context.Background(), AllCategories, []int64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrNoQuizCandidates)

	_, err = svc.NextQuizQuestion(context.Background(), 3, nil)
	assert.ErrorIs(t, err, ErrNoQuizCandidates)
}

func TestNewServiceDefaultsPageSize(t *testing.T) {
	svc := NewService(seededQuestions(12), seededCategories(), ServiceOptions{})

	page, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Questions, DefaultPageSize)

	page, err = svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 12-DefaultPageSize)
}
