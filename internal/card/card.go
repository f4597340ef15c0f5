package card

// Card represents a conjured magic card
type Card struct {
	ID          string // Unique within a session (generated unless the caller supplies one)
	Title       string // Display title
	Description string // Flavor text shown on the card face
	Color       string // Face color, always one of the palette values (#rrggbb)
	CreatedAt   string // Human-readable creation time, display only
	Flipped     bool   // Whether the card is lying face down
}
