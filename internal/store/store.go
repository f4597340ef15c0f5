// Package store keeps the cards conjured during a session, in the order
// they arrived, together with the session counters.
package store

import (
	"errors"
	"math/rand"

	"github.com/arcanaland/conjuror/internal/card"
)

// ErrNotFound is returned by Flip when no card on the table has the
// requested id.
var ErrNotFound = errors.New("card not found")

// Stats summarizes a session.
type Stats struct {
	Count int // cards currently on the table
	Flips int // flips performed since the session began
}

// Store is an ordered collection of cards; insertion order is display
// order. Cards are never removed. A Store belongs to a single goroutine
// and does no locking.
type Store struct {
	cards        []*card.Card
	totalCreated int
	totalFlips   int
}

// New returns an empty table.
func New() *Store {
	return &Store{}
}

// Add places c at the end of the table.
func (s *Store) Add(c *card.Card) {
	s.cards = append(s.cards, c)
	s.totalCreated++
}

// Flip toggles the flipped state of the card with the given id and
// returns it. An unknown id returns ErrNotFound and leaves the table and
// counters untouched.
func (s *Store) Flip(id string) (*card.Card, error) {
	for _, c := range s.cards {
		if c.ID == id {
			c.Flipped = !c.Flipped
			s.totalFlips++
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// FlipAll flips every card on the table and returns how many were
// flipped. Each card counts toward the session flip total.
func (s *Store) FlipAll() int {
	for _, c := range s.cards {
		c.Flipped = !c.Flipped
	}
	s.totalFlips += len(s.cards)
	return len(s.cards)
}

// Shuffle randomly reorders the table. The set of cards and the counters
// are unchanged.
func (s *Store) Shuffle() {
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// All returns the cards in display order. The slice is a copy, the cards
// themselves are shared.
func (s *Store) All() []*card.Card {
	out := make([]*card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Created returns how many cards have ever been added to the table.
func (s *Store) Created() int {
	return s.totalCreated
}

// Stats reports the current table size and the session flip count.
func (s *Store) Stats() Stats {
	return Stats{Count: len(s.cards), Flips: s.totalFlips}
}
