package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question and category endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the endpoints on mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /question", h.SearchQuestions)
	mux.HandleFunc("POST /quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.TotalQuestions,
		"categories":       categoryMap(page.Categories),
		"current_category": categoryType(page.CurrentCategory),
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.fail(w, r, ErrQuestionNotFound)
		return
	}

	deleted, err := h.service.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": deleted,
	})
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, ErrMalformedRequest)
		return
	}

	in, err := req.NewQuestion()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.service.CreateQuestion(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"created": created.ID,
	})
}

// SearchQuestions handles POST /question?page=N
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, ErrMalformedRequest)
		return
	}

	page, err := h.service.SearchQuestions(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.TotalQuestions,
		"current_category": categoryType(page.CurrentCategory),
	})
}

// CategoryQuestions handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.fail(w, r, ErrCategoryNotFound)
		return
	}

	page, err := h.service.CategoryQuestions(r.Context(), id, pageParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.TotalQuestions,
		"current_category": categoryType(page.CurrentCategory),
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, ErrMalformedRequest)
		return
	}

	categoryID, err := req.CategoryID()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	q, err := h.service.NextQuizQuestion(r.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// statusFor is the single place domain errors become HTTP status codes. 422 for a missing
// delete target and 404 for an empty page are kept for client compatibility.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidQuestion), errors.Is(err, ErrQuestionNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPageNotFound), errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrNoQuizCandidates):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logger := logging.FromContext(r.Context(), h.logger)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request rejected")
	}
	httperrors.RespondStatus(w, status)
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("encode response failed")
	}
}

// pageParam reads ?page=, defaulting to 1 when absent or not a number.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func categoryMap(categories []Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

func categoryType(c *Category) interface{} {
	if c == nil {
		return nil
	}
	return c.Type
}
