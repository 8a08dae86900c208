package system

import (
	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// Counters tallies obstacle encounters for one session.
type Counters struct {
	Traps   int
	Puzzles int
	Bonuses int
}

// Outcome names what an obstacle did to the player.
type Outcome uint8

const (
	OutcomeNone        Outcome = iota
	OutcomeTrapFailed          // hit while not Happy
	OutcomeTrapAvoided         // slipped past while Happy
	OutcomePuzzle
	OutcomeBonus
	OutcomeShortcut // power-up while Happy
	OutcomeHeavy    // power-up while Sad
	OutcomeSteady   // power-up while Neutral
)

var outcomeNames = [...]string{"none", "failed", "avoided", "puzzle", "bonus", "shortcut", "heavy", "steady"}

func (o Outcome) String() string {
	if int(o) >= len(outcomeNames) {
		return "none"
	}
	return outcomeNames[o]
}

// Effect is the result of stepping onto an obstacle.
type Effect struct {
	Obstacle gamemap.Obstacle
	Outcome  Outcome
	Before   entity.Mood
	After    entity.Mood
}

// ResolveObstacle applies obs to p and bumps the matching counter.
// Power-ups only narrate; they change neither mood nor counters.
func ResolveObstacle(p *entity.Player, obs gamemap.Obstacle, c *Counters) Effect {
	eff := Effect{Obstacle: obs, Before: p.Mood}
	switch obs {
	case gamemap.Trap:
		c.Traps++
		if p.Mood != entity.Happy {
			p.Mood = entity.Sad
			eff.Outcome = OutcomeTrapFailed
		} else {
			eff.Outcome = OutcomeTrapAvoided
		}
	case gamemap.Puzzle:
		c.Puzzles++
		p.Mood = p.Mood.Next()
		eff.Outcome = OutcomePuzzle
	case gamemap.Bonus:
		c.Bonuses++
		p.Mood = entity.Happy
		eff.Outcome = OutcomeBonus
	case gamemap.PowerUp:
		switch p.Mood {
		case entity.Happy:
			eff.Outcome = OutcomeShortcut
		case entity.Sad:
			eff.Outcome = OutcomeHeavy
		default:
			eff.Outcome = OutcomeSteady
		}
	}
	eff.After = p.Mood
	return eff
}

// Hint is an extra remark an NPC adds based on session stats.
type Hint uint8

const (
	HintWandering Hint = iota // long walk
	HintSurvivor              // hit at least one trap
	HintSeeker                // asked for philosophy often
)

func (h Hint) String() string {
	switch h {
	case HintWandering:
		return "wandering"
	case HintSurvivor:
		return "survivor"
	}
	return "seeker"
}

// Hint thresholds.
const (
	WanderingSteps = 150
	SeekerUses     = 3
)

// EncounterStats are the cumulative numbers NPC hints are keyed on.
type EncounterStats struct {
	Steps          int
	Traps          int
	PhilosophyUses int
}

// Encounter is one NPC speaking to the player.
type Encounter struct {
	Index int // position in the roster
	NPC   entity.NPC
	Line  string
	Hints []Hint
}

// CheckEncounter finds the first active NPC on the player's cell, deactivates it
// and returns what it says. Each NPC speaks at most once per session.
func CheckEncounter(p entity.Player, npcs []entity.NPC, stats EncounterStats) (Encounter, bool) {
	for i := range npcs {
		npc := &npcs[i]
		if !npc.Active || npc.Pos != p.Pos {
			continue
		}
		npc.Active = false
		enc := Encounter{Index: i, NPC: *npc, Line: npc.Lines.Line(p.Mood)}
		if stats.Steps > WanderingSteps {
			enc.Hints = append(enc.Hints, HintWandering)
		}
		if stats.Traps > 0 {
			enc.Hints = append(enc.Hints, HintSurvivor)
		}
		if stats.PhilosophyUses >= SeekerUses {
			enc.Hints = append(enc.Hints, HintSeeker)
		}
		return enc, true
	}
	return Encounter{}, false
}
