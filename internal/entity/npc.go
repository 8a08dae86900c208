package entity

import "psymaze/internal/gamemap"

// Archetype identifies an NPC's personality.
type Archetype uint8

const (
	Mentor Archetype = iota
	Shadow
	Sage
)

func (a Archetype) String() string {
	switch a {
	case Mentor:
		return "Mentor"
	case Shadow:
		return "Shadow"
	}
	return "Sage"
}

// ArchetypeFor maps a roster index to its archetype. Indices past Shadow are Sages.
func ArchetypeFor(index int) Archetype {
	switch index {
	case 0:
		return Mentor
	case 1:
		return Shadow
	}
	return Sage
}

// Dialogue holds one line per mood.
type Dialogue struct {
	Happy   string `yaml:"happy"`
	Neutral string `yaml:"neutral"`
	Sad     string `yaml:"sad"`
}

// Line picks the line keyed by m.
func (d Dialogue) Line(m Mood) string {
	switch m {
	case Happy:
		return d.Happy
	case Neutral:
		return d.Neutral
	}
	return d.Sad
}

// NPC is a one-shot archetype that speaks the first time the player reaches it.
type NPC struct {
	Pos       gamemap.Pos
	Archetype Archetype
	Lines     Dialogue
	Active    bool // false once it has spoken
}
