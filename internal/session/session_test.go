package session

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/supercore/words/internal/domain"
	"github.com/supercore/words/internal/store"
	"github.com/supercore/words/internal/ui"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func dueCard(question string, nextReview int64) domain.Card {
	return domain.Card{
		Question:   question,
		Answer:     "answer for " + question,
		Guidance:   "hint for " + question,
		EaseFactor: domain.InitialEaseFactor,
		NextReview: nextReview,
	}
}

func newTestStore(t *testing.T, cards ...domain.Card) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "flashcards.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cards {
		st.Put(c)
	}
	return st
}

func countContaining(lines []string, substr string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

func TestDue(t *testing.T) {
	now := int64(1_000_000)
	cards := []domain.Card{
		dueCard("a", 100),
		dueCard("b", 50),
		dueCard("c", now),
		dueCard("d", now+1000),
	}

	due := Due(cards, now)
	if len(due) != 3 {
		t.Fatalf("expected 3 due cards, got %d", len(due))
	}
	for i, want := range []string{"b", "a", "c"} {
		if due[i].Question != want {
			t.Errorf("position %d: expected %q, got %q", i, want, due[i].Question)
		}
	}
}

func TestDueTieBreakIsDeterministic(t *testing.T) {
	cards := []domain.Card{dueCard("beta", 10), dueCard("alpha", 10)}
	due := Due(cards, 10)
	if due[0].Question != "alpha" || due[1].Question != "beta" {
		t.Errorf("expected question-order tie break, got %q, %q", due[0].Question, due[1].Question)
	}
}

func TestRunBatchBoundaryStop(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0), dueCard("b", 0), dueCard("c", 0))
	script := &ui.Script{Answers: []string{"", "5", "", "5", "n"}}

	sess := &Session{Store: st, Prompt: script, BatchSize: 2, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := countContaining(script.Transcript, "Continue? (y/n)"); got != 1 {
		t.Errorf("expected exactly 1 continue prompt, got %d", got)
	}
	if got := countContaining(script.Transcript, "Question: c"); got != 0 {
		t.Error("third card was shown after a negative continue answer")
	}

	// The persisted store must hold the first two updates and nothing else.
	reloaded, err := store.Open(st.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []string{"a", "b"} {
		card, _ := reloaded.Get(q)
		if card.Repetitions != 1 || card.NextReview == 0 {
			t.Errorf("card %q not updated: %+v", q, card)
		}
	}
	untouched, _ := reloaded.Get("c")
	if untouched.Repetitions != 0 || untouched.NextReview != 0 {
		t.Errorf("card c was updated despite early exit: %+v", untouched)
	}
}

func TestRunBatchBoundaryContinue(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0), dueCard("b", 0), dueCard("c", 0))
	script := &ui.Script{Answers: []string{"", "5", "", "5", "y", "", "5"}}

	sess := &Session{Store: st, Prompt: script, BatchSize: 2, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// No continue prompt after the last card.
	if got := countContaining(script.Transcript, "Continue? (y/n)"); got != 1 {
		t.Errorf("expected exactly 1 continue prompt, got %d", got)
	}
	reloaded, err := store.Open(st.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []string{"a", "b", "c"} {
		card, _ := reloaded.Get(q)
		if card.Repetitions != 1 {
			t.Errorf("card %q not updated: %+v", q, card)
		}
	}
}

func TestRunInvalidScoreSkipsCard(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0), dueCard("b", 0))
	script := &ui.Script{Answers: []string{"", "not a number", "", "7"}}

	sess := &Session{Store: st, Prompt: script, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := countContaining(script.Transcript, "skipping this card"); got != 2 {
		t.Errorf("expected 2 skip notices, got %d", got)
	}

	reloaded, err := store.Open(st.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []string{"a", "b"} {
		card, _ := reloaded.Get(q)
		if card.Repetitions != 0 || card.NextReview != 0 {
			t.Errorf("skipped card %q was modified: %+v", q, card)
		}
	}
}

func TestRunProgressUsesInitialCount(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0), dueCard("b", 0))
	script := &ui.Script{Answers: []string{"", "3", "", "3"}}

	sess := &Session{Store: st, Prompt: script, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if countContaining(script.Transcript, "Review 1/2:") != 1 ||
		countContaining(script.Transcript, "Review 2/2:") != 1 {
		t.Errorf("progress lines wrong: %v", script.Transcript)
	}
}

func TestRunNoDueCards(t *testing.T) {
	st := newTestStore(t, dueCard("future", testNow.Unix()+86400))
	script := &ui.Script{}

	sess := &Session{Store: st, Prompt: script, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if countContaining(script.Transcript, "No cards are due") != 1 {
		t.Errorf("expected no-cards notice, got %v", script.Transcript)
	}
}

type captureRecorder struct {
	logs []domain.ReviewLog
	err  error
}

func (r *captureRecorder) Record(log domain.ReviewLog) error {
	r.logs = append(r.logs, log)
	return r.err
}

func TestRunRecordsJournal(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0))
	script := &ui.Script{Answers: []string{"", "4"}}
	rec := &captureRecorder{}

	sess := &Session{Store: st, Prompt: script, Journal: rec, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(rec.logs) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(rec.logs))
	}
	log := rec.logs[0]
	if log.Question != "a" || log.Score != 4 || log.IntervalAfter != 1 {
		t.Errorf("unexpected journal entry: %+v", log)
	}
	if !log.ReviewedAt.Equal(testNow) {
		t.Errorf("expected reviewed_at %v, got %v", testNow, log.ReviewedAt)
	}
}

func TestRunJournalFailureIsNotFatal(t *testing.T) {
	st := newTestStore(t, dueCard("a", 0))
	script := &ui.Script{Answers: []string{"", "4"}}
	rec := &captureRecorder{err: errors.New("disk full")}

	sess := &Session{Store: st, Prompt: script, Journal: rec, Clock: fixedClock}
	if err := sess.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	card, _ := st.Get("a")
	if card.Repetitions != 1 {
		t.Errorf("review was not applied: %+v", card)
	}
}
