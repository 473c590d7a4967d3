package game

// Rules defines the variant-specific parameters of a game.
type Rules interface {
	PegsPerColor() int
	// SeatColors returns the colors in play for the given seat count,
	// in turn order. Unsupported counts report ErrInvalidConfiguration.
	SeatColors(players int) ([]Color, error)
	// MaxTurns bounds automated self-play so a drawn-out game cannot
	// loop forever.
	MaxTurns() int
}
