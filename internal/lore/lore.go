// Package lore generates flavor text for conjured cards.
package lore

import (
	"fmt"
	"math/rand"
)

var (
	adjectives = []string{"mystical", "enchanted", "legendary", "ancient", "glowing", "shimmering"}
	nouns      = []string{"dragon", "phoenix", "unicorn", "wizard", "crystal", "talisman"}
	verbs      = []string{"summons", "channels", "unleashes", "radiates", "conjures", "commands"}
)

// Generate returns a one-sentence description built from the fixed word
// lists, with the adjective, noun and verb each chosen independently at
// random.
func Generate() string {
	return fmt.Sprintf("This %s %s %s incredible magical powers when activated.",
		pick(adjectives), pick(nouns), pick(verbs))
}

func pick(words []string) string {
	return words[rand.Intn(len(words))]
}
