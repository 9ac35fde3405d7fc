package question

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quizSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_selections_total",
		Help:      "Quiz question picks by outcome.",
	}, []string{"outcome"})

	questionMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "question_mutations_total",
		Help:      "Questions created or deleted.",
	}, []string{"op"})
)
