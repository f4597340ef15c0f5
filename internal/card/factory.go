package card

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/conjuror/internal/lore"
	"github.com/arcanaland/conjuror/internal/palette"
)

// Factory creates cards, filling in defaults for anything the caller
// leaves blank. It keeps its own creation count so that default titles
// stay numbered in creation order.
type Factory struct {
	created int
}

// NewFactory returns a factory whose first default title is "Magic Card 1".
func NewFactory() *Factory {
	return &Factory{}
}

// New conjures a card. Any of title, description and id may be empty, in
// which case the factory fills them in: a numbered title, generated flavor
// text, and a fresh uuid. The face color is always drawn from the palette,
// even when everything else is supplied by the caller.
func (f *Factory) New(title, description, id string) *Card {
	f.created++

	if id == "" {
		id = uuid.NewString()
	}
	if title == "" {
		title = fmt.Sprintf("Magic Card %d", f.created)
	}
	if description == "" {
		description = lore.Generate()
	}

	return &Card{
		ID:          id,
		Title:       title,
		Description: description,
		Color:       palette.Random(),
		CreatedAt:   time.Now().Format("Jan 2, 2006 3:04:05 PM"),
	}
}

// Created returns how many cards this factory has made so far.
func (f *Factory) Created() int {
	return f.created
}
