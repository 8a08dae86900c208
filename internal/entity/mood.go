package entity

import "math/rand"

// Mood drives obstacle outcomes and the morphing bias.
type Mood uint8

const (
	Sad Mood = iota
	Neutral
	Happy
)

// MoodCount is the number of mood states.
const MoodCount = 3

var moodFaces = [MoodCount]string{":(", ":|", ":)"}
var moodNames = [MoodCount]string{"Sad", "Neutral", "Happy"}

// Face returns the text emoticon shown in the status line.
func (m Mood) Face() string {
	if int(m) >= MoodCount {
		return "?"
	}
	return moodFaces[m]
}

func (m Mood) String() string {
	if int(m) >= MoodCount {
		return "Unknown"
	}
	return moodNames[m]
}

// Next advances the mood cyclically Sad -> Neutral -> Happy -> Sad.
func (m Mood) Next() Mood {
	return Mood((int(m) + 1) % MoodCount)
}

// RandomMood draws one of the three moods uniformly.
func RandomMood(rng *rand.Rand) Mood {
	return Mood(rng.Intn(MoodCount))
}
