// Package store owns the persisted card collection.
//
// Cards live in memory as a question-keyed map and are persisted wholesale
// to a flat JSON file: the whole file is read once at open and rewritten on
// every save. There is no partial persistence.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/supercore/words/internal/domain"
)

// Store maps question text to cards and knows how to persist itself.
type Store struct {
	path  string
	cards map[string]domain.Card
}

// Open loads the card file at path. A missing file is not an error: the
// trainer starts with an empty collection on first run.
func Open(path string) (*Store, error) {
	s := &Store{path: path, cards: make(map[string]domain.Card)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card store %s: %w", path, err)
	}

	var cards []domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode card store %s: %w", path, err)
	}
	for _, c := range cards {
		s.cards[c.Question] = c
	}
	return s, nil
}

// Save writes every card back to the store file as a JSON array, sorted by
// question so the output is stable across runs. The file is written to a
// temporary sibling and renamed into place so a crash mid-write cannot
// truncate the previous state.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode card store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write card store %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace card store %s: %w", s.path, err)
	}
	return nil
}

// Add inserts a new card with fresh scheduling state and returns it.
// A question colliding with an existing card is suffixed with a counter,
// e.g. "Q (1)", so an add never overwrites.
func (s *Store) Add(question, answer, guidance string) domain.Card {
	unique := question
	for n := 1; ; n++ {
		if _, taken := s.cards[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s (%d)", question, n)
	}

	card := domain.NewCard(unique, answer, guidance)
	s.cards[unique] = card
	return card
}

// Put replaces the card stored under card.Question.
func (s *Store) Put(card domain.Card) {
	s.cards[card.Question] = card
}

// Get returns the card for the given question, if present.
func (s *Store) Get(question string) (domain.Card, bool) {
	c, ok := s.cards[question]
	return c, ok
}

// All returns every card, sorted by question text.
func (s *Store) All() []domain.Card {
	cards := make([]domain.Card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Question < cards[j].Question
	})
	return cards
}

// Len returns the number of stored cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// Path returns the file this store persists to.
func (s *Store) Path() string {
	return s.path
}
