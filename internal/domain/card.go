package domain

import "time"

// InitialEaseFactor is the ease factor assigned to every new card.
const InitialEaseFactor = 2.5

// Card is a single question-answer-guidance unit together with its
// scheduling state. Cards are keyed by question text within a store.
// The JSON field names match the persisted file format.
type Card struct {
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	Guidance    string  `json:"guidance"`
	Interval    int     `json:"interval"`    // days until the next review
	Repetitions int     `json:"repetitions"` // consecutive successful recalls since the last lapse
	EaseFactor  float64 `json:"ease_factor"` // interval growth multiplier, never below 1.3
	NextReview  int64   `json:"next_review"` // unix seconds; 0 means due immediately
}

// NewCard returns a card with fresh scheduling state, due immediately.
func NewCard(question, answer, guidance string) Card {
	return Card{
		Question:   question,
		Answer:     answer,
		Guidance:   guidance,
		EaseFactor: InitialEaseFactor,
	}
}

// ReviewLog records a single review event for a card.
type ReviewLog struct {
	Question       string
	Score          int
	IntervalBefore int
	IntervalAfter  int
	EaseAfter      float64
	ReviewedAt     time.Time
}
