package gamemap

// Obstacle classifies what sits on an open cell.
type Obstacle uint8

const (
	None Obstacle = iota
	Trap
	Puzzle
	Bonus
	PowerUp
)

func (o Obstacle) String() string {
	switch o {
	case Trap:
		return "Trap"
	case Puzzle:
		return "Puzzle"
	case Bonus:
		return "Bonus"
	case PowerUp:
		return "PowerUp"
	}
	return "None"
}

// Glyph returns the single-character map symbol for o.
// K marks a power-up (key/power).
func (o Obstacle) Glyph() rune {
	switch o {
	case Trap:
		return 'T'
	case Puzzle:
		return 'Q'
	case Bonus:
		return 'B'
	case PowerUp:
		return 'K'
	}
	return ' '
}
