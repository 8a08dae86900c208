// Package assets holds the game's embedded text tables.
package assets

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"psymaze/internal/entity"
	"psymaze/internal/system"
)

//go:embed text.yaml
var textYAML []byte

// OutcomeText is the narration and journal lesson for one obstacle outcome.
type OutcomeText struct {
	Message string `yaml:"message"`
	Lesson  string `yaml:"lesson"`
}

// Lessons are the fixed journal lines not tied to an obstacle.
type Lessons struct {
	NPCMeeting          string `yaml:"npc_meeting"`
	NPCReflection       string `yaml:"npc_reflection"`
	Exercise            string `yaml:"exercise"`
	EndReflectionPrefix string `yaml:"end_reflection_prefix"`
}

// Messages are one-line status texts shown in the message bar.
type Messages struct {
	Morph            string `yaml:"morph"`
	Sealed           string `yaml:"sealed"`
	InvalidMove      string `yaml:"invalid_move"`
	InvalidJump      string `yaml:"invalid_jump"`
	BlockedJump      string `yaml:"blocked_jump"`
	Jumped           string `yaml:"jumped"`
	ReflectionPrompt string `yaml:"reflection_prompt"`
	ReflectionThanks string `yaml:"reflection_thanks"`
	ExerciseThanks   string `yaml:"exercise_thanks"`
	ExerciseSkipped  string `yaml:"exercise_skipped"`
	JournalEmpty     string `yaml:"journal_empty"`
	EndSkipped       string `yaml:"end_skipped"`
}

// Text is the parsed content of text.yaml.
type Text struct {
	Quotes    []string                   `yaml:"quotes"`
	Exercises []string                   `yaml:"exercises"`
	Dialogue  map[string]entity.Dialogue `yaml:"dialogue"`
	Hints     map[string]string          `yaml:"hints"`
	Outcomes  map[string]OutcomeText     `yaml:"outcomes"`
	Lessons   Lessons                    `yaml:"lessons"`
	Messages  Messages                   `yaml:"messages"`
}

// Load parses the embedded text tables.
func Load() (*Text, error) {
	return parse(textYAML)
}

func parse(raw []byte) (*Text, error) {
	var t Text
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse text tables: %w", err)
	}
	if len(t.Quotes) == 0 || len(t.Exercises) == 0 {
		return nil, fmt.Errorf("parse text tables: quotes and exercises must not be empty")
	}
	return &t, nil
}

// ArchetypeDialogue returns the NPC lines keyed by archetype.
func (t *Text) ArchetypeDialogue() map[entity.Archetype]entity.Dialogue {
	out := make(map[entity.Archetype]entity.Dialogue, len(t.Dialogue))
	for _, a := range []entity.Archetype{entity.Mentor, entity.Shadow, entity.Sage} {
		if d, ok := t.Dialogue[strings.ToLower(a.String())]; ok {
			out[a] = d
		}
	}
	return out
}

// Outcome returns the narration for an obstacle outcome. The zero value is
// returned for OutcomeNone.
func (t *Text) Outcome(o system.Outcome) OutcomeText {
	if o == system.OutcomeNone {
		return OutcomeText{}
	}
	return t.Outcomes[o.String()]
}

// Hint returns the extra NPC remark for h.
func (t *Text) Hint(h system.Hint) string {
	return t.Hints[h.String()]
}

// SupportKind tells a quote from an exercise.
type SupportKind uint8

const (
	SupportQuote SupportKind = iota
	SupportExercise
)

// Support is one philosophy panel entry.
type Support struct {
	Kind SupportKind
	Text string
}

// Title is the panel heading.
func (s Support) Title() string {
	if s.Kind == SupportExercise {
		return "Philosophical Exercise"
	}
	return "Philosophical Quote"
}

// RandomSupport flips a coin between a quote and an exercise, then picks one.
func (t *Text) RandomSupport(rng *rand.Rand) Support {
	if rng.Intn(2) == 0 {
		return Support{Kind: SupportQuote, Text: t.Quotes[rng.Intn(len(t.Quotes))]}
	}
	return Support{Kind: SupportExercise, Text: t.Exercises[rng.Intn(len(t.Exercises))]}
}
