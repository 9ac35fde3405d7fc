package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionRepository interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type categoryRepository interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int64) (sqlcgen.Category, error)
}

// Service answers the trivia API: listings, search, create/delete and quiz picks.
type Service struct {
	questions  questionRepository
	categories categoryRepository
	selector   *Selector
	pageSize   int
}

type ServiceOptions struct {
	PageSize int
	Random   RandomSource
}

func NewService(questions questionRepository, categories categoryRepository, opts ServiceOptions) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		selector:   NewSelector(opts.Random),
		pageSize:   opts.PageSize,
	}
}

// Categories lists every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return toCategories(rows), nil
}

// ListQuestions returns one page of all questions. An empty page is ErrPageNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (Page, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}
	current := Paginate(toQuestions(rows), page, s.pageSize)
	if len(current) == 0 {
		return Page{}, ErrPageNotFound
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Questions:       current,
		TotalQuestions:  len(rows),
		Categories:      categories,
		CurrentCategory: firstCategory(categories),
	}, nil
}

// SearchQuestions pages through questions whose text contains term, ignoring case. Answers are
// not searched. An empty result is not an error.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (Page, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return Page{}, fmt.Errorf("search questions: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Questions:       Paginate(toQuestions(rows), page, s.pageSize),
		TotalQuestions:  len(rows),
		CurrentCategory: firstCategory(categories),
	}, nil
}

// CategoryQuestions pages through the questions of one category.
func (s *Service) CategoryQuestions(ctx context.Context, categoryID int64, page int) (Page, error) {
	category, err := s.category(ctx, categoryID)
	if err != nil {
		return Page{}, err
	}

	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return Page{}, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}

	return Page{
		Questions:       Paginate(toQuestions(rows), page, s.pageSize),
		TotalQuestions:  len(rows),
		CurrentCategory: &category,
	}, nil
}

// CreateQuestion validates and stores a question. Nothing is written when validation fails or
// the category does not exist.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion) (Question, error) {
	if err := in.Validate(); err != nil {
		return Question{}, err
	}
	if _, err := s.category(ctx, in.Category); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return Question{}, fmt.Errorf("%w: category %d does not exist", ErrInvalidQuestion, in.Category)
		}
		return Question{}, err
	}

	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: int16(in.Difficulty),
	})
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	questionMutations.WithLabelValues("create").Inc()
	return toQuestion(row), nil
}

// DeleteQuestion removes a question by id.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrQuestionNotFound
		}
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	questionMutations.WithLabelValues("delete").Inc()
	return deleted, nil
}

// NextQuizQuestion picks a random question not in previous. categoryID AllCategories draws
// from every question; any other id restricts the pool to that category.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (Question, error) {
	var (
		rows []sqlcgen.Question
		err  error
	)
	if categoryID == AllCategories {
		rows, err = s.questions.List(ctx)
	} else {
		rows, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return Question{}, fmt.Errorf("load quiz pool: %w", err)
	}

	q, err := s.selector.Select(toQuestions(rows), previous)
	if err != nil {
		quizSelections.WithLabelValues("exhausted").Inc()
		return Question{}, err
	}
	quizSelections.WithLabelValues("served").Inc()
	return q, nil
}

func (s *Service) category(ctx context.Context, id int64) (Category, error) {
	row, err := s.categories.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return Category{ID: row.ID, Type: row.Type}, nil
}

// firstCategory stands in for the "current" category on unfiltered listings.
func firstCategory(categories []Category) *Category {
	if len(categories) == 0 {
		return nil
	}
	c := categories[0]
	return &c
}
