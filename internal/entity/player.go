package entity

import "psymaze/internal/gamemap"

// Player is the single walker in a session.
type Player struct {
	Pos  gamemap.Pos
	Mood Mood
}

// NewPlayer places a Neutral player on the origin.
func NewPlayer() Player {
	return Player{Pos: gamemap.Origin, Mood: Neutral}
}
