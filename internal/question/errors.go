package question

import "errors"

var (
	// ErrPageNotFound means the requested page of the full listing is empty.
	ErrPageNotFound = errors.New("page not found")
	// ErrCategoryNotFound means the category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrQuestionNotFound means the delete target does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNoQuizCandidates means every question in scope was already seen.
	ErrNoQuizCandidates = errors.New("no quiz candidates left")
	// ErrInvalidQuestion wraps create-question validation failures.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrMalformedRequest means the request body could not be decoded or lacks a required object.
	ErrMalformedRequest = errors.New("malformed request")
)
