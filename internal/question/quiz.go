package question

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields a uniform integer in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource serialises access to sources that are not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Selector picks the next quiz question among those the player has not seen yet.
type Selector struct {
	rnd RandomSource
}

// NewSelector builds a Selector. A nil src uses the process-wide generator.
func NewSelector(src RandomSource) *Selector {
	if src == nil {
		return &Selector{rnd: globalSource{}}
	}
	return &Selector{rnd: &lockedSource{src: src}}
}

// Select drops every question whose id is in seen and returns one of the remaining questions
// uniformly at random. ErrNoQuizCandidates is returned when nothing remains.
func (s *Selector) Select(pool []Question, seen []int64) (Question, error) {
	excluded := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		excluded[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := excluded[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return Question{}, ErrNoQuizCandidates
	}
	return candidates[s.rnd.IntN(len(candidates))], nil
}
