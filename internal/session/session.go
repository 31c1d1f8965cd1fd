// Package session drives one review pass over the due cards.
//
// The session selects due cards once, walks them most-overdue first, applies
// the scheduler after each scored response, pauses at batch boundaries, and
// persists the store exactly once when the pass ends, whether it ran to
// completion or was stopped early.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/supercore/words/internal/domain"
	"github.com/supercore/words/internal/sm2"
	"github.com/supercore/words/internal/store"
	"github.com/supercore/words/internal/ui"
)

// DefaultBatchSize is used when Session.BatchSize is unset.
const DefaultBatchSize = 5

// Recorder receives one entry per applied review. Record failures are
// logged, not fatal: the card store, not the recorder, is the source of
// truth.
type Recorder interface {
	Record(log domain.ReviewLog) error
}

// Session holds the collaborators for one review pass.
type Session struct {
	Store     *store.Store
	Prompt    ui.Prompter
	Journal   Recorder         // optional
	BatchSize int              // zero means DefaultBatchSize
	Clock     func() time.Time // optional, defaults to time.Now
}

// Due returns the cards due at now (next_review <= now), most overdue
// first. Equal due times fall back to question order so a run is
// deterministic.
func Due(cards []domain.Card, now int64) []domain.Card {
	var due []domain.Card
	for _, c := range cards {
		if c.NextReview <= now {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].NextReview != due[j].NextReview {
			return due[i].NextReview < due[j].NextReview
		}
		return due[i].Question < due[j].Question
	})
	return due
}

// Run reviews the due cards and saves the store once at the end.
//
// Each card is shown with its guidance, an acknowledgment gates the answer
// reveal, and a 0-5 score drives the scheduler. An unparsable or
// out-of-range score skips that card without touching it; the card is not
// requeued this session. The due list and its count are fixed at the start:
// cards becoming due mid-session wait for the next run.
func (s *Session) Run() error {
	now := s.now()
	due := Due(s.Store.All(), now.Unix())
	total := len(due)
	if total == 0 {
		s.Prompt.Say("No cards are due for review.")
		return nil
	}

	reviewed := 0
	for i, card := range due {
		s.Prompt.Say("Review %d/%d:", i+1, total)
		s.Prompt.Say("Question: %s", card.Question)
		s.Prompt.Say("Hint: %s", card.Guidance)
		if _, err := s.Prompt.Ask("Press enter to reveal the answer."); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		s.Prompt.Say("Answer: %s", card.Answer)

		raw, err := s.Prompt.Ask("How well did you remember? (0-5):")
		if err != nil {
			return fmt.Errorf("failed to read score: %w", err)
		}
		score, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil {
			s.Prompt.Say("Invalid score %q, skipping this card.", strings.TrimSpace(raw))
			continue
		}

		updated, err := sm2.Update(card, score, s.now())
		if errors.Is(err, sm2.ErrInvalidScore) {
			s.Prompt.Say("Invalid score %d, skipping this card.", score)
			continue
		}
		if err != nil {
			return err
		}

		s.Store.Put(updated)
		reviewed++
		s.record(card, updated, score)
		s.Prompt.Say("")

		if reviewed%s.batchSize() == 0 && i+1 < total {
			answer, err := s.Prompt.Ask(fmt.Sprintf("You have reviewed %d cards. Continue? (y/n):", reviewed))
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				break
			}
		}
	}

	if err := s.Store.Save(); err != nil {
		return fmt.Errorf("failed to save cards after review: %w", err)
	}
	slog.Info("review session finished", "reviewed", reviewed, "due", total)
	return nil
}

func (s *Session) record(before, after domain.Card, score int) {
	if s.Journal == nil {
		return
	}
	log := domain.ReviewLog{
		Question:       before.Question,
		Score:          score,
		IntervalBefore: before.Interval,
		IntervalAfter:  after.Interval,
		EaseAfter:      after.EaseFactor,
		ReviewedAt:     s.now(),
	}
	if err := s.Journal.Record(log); err != nil {
		slog.Warn("failed to record review", "question", before.Question, "error", err)
	}
}

func (s *Session) batchSize() int {
	if s.BatchSize > 0 {
		return s.BatchSize
	}
	return DefaultBatchSize
}

func (s *Session) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
