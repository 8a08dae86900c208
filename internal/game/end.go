package game

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"psymaze/internal/entity"
	"psymaze/internal/persist"
	"psymaze/internal/scripting"
	"psymaze/internal/session"
)

// maxMoodBar caps the width of one mood bar on the end screen.
const maxMoodBar = 60

// runResult is everything the end screen reports.
type runResult struct {
	Stats       session.Stats
	Traps       int
	Puzzles     int
	Bonuses     int
	Medal       scripting.Medal
	Score       scripting.Score
	LevelBefore int
	LevelAfter  int
}

// finish scores the run, persists it and shows the end screen.
func (g *Game) finish() {
	st := g.sess.Stats()
	c := g.sess.Counters()
	res := runResult{
		Stats:   st,
		Traps:   c.Traps,
		Puzzles: c.Puzzles,
		Bonuses: c.Bonuses,
		Medal:   g.scorer.Medal(st.Steps),
		Score: g.scorer.Score(scripting.RunStats{
			Steps:          st.Steps,
			Sad:            st.Moods[entity.Sad],
			Neutral:        st.Moods[entity.Neutral],
			Happy:          st.Moods[entity.Happy],
			Traps:          c.Traps,
			Puzzles:        c.Puzzles,
			Bonuses:        c.Bonuses,
			PhilosophyUses: st.PhilosophyUses,
		}),
		LevelBefore: g.savedLevel,
	}
	res.LevelAfter = persist.NextLevel(g.savedLevel, res.Score.XP)
	g.persistRun(res)

	g.log.Info("session finished",
		zap.Int("steps", st.Steps),
		zap.Int("xp", res.Score.XP),
		zap.String("medal", res.Medal.Name),
		zap.Int("level_before", res.LevelBefore),
		zap.Int("level_after", res.LevelAfter),
	)

	body := endReport(res)
	if len(g.messages) > 0 {
		body = append(body, "", g.messages[len(g.messages)-1])
	}
	redraw := func() { g.renderer.DrawPanel("Congratulations! You reached the exit.", body, "") }
	if !g.confirm("Write an end-of-session reflection?", redraw) {
		body = append(body, "", g.text.Messages.EndSkipped)
		g.waitKey(func() { g.renderer.DrawPanel("Congratulations! You reached the exit.", body, panelFooter) })
		return
	}
	answer, ok := g.readLine("> ", redraw)
	if !ok || answer == "" {
		return
	}
	g.journal(g.text.Lessons.EndReflectionPrefix + answer)
}

// persistRun writes the profile level, the summary block and the JSONL run
// log. Each failure is logged and reported without stopping the others.
func (g *Game) persistRun(res runResult) {
	st := res.Stats
	if err := g.store.SaveLevel(res.LevelAfter); err != nil {
		g.log.Warn("save level failed", zap.Error(err))
		g.addMessage("Could not save your level.")
	}
	sum := persist.Summary{
		Steps:          st.Steps,
		Sad:            st.Moods[entity.Sad],
		Neutral:        st.Moods[entity.Neutral],
		Happy:          st.Moods[entity.Happy],
		Traps:          res.Traps,
		Puzzles:        res.Puzzles,
		Bonuses:        res.Bonuses,
		PhilosophyUses: st.PhilosophyUses,
	}
	if err := g.store.AppendSummary(sum); err != nil {
		g.log.Warn("save summary failed", zap.Error(err))
		g.addMessage("Could not save the session summary.")
	}

	names := make([]string, 0, len(res.Score.Achievements))
	for _, a := range res.Score.Achievements {
		names = append(names, a.Name)
	}
	grid := g.sess.Grid()
	run := persist.RunLog{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     g.sess.Level(),
		Seed:      g.sess.Seed(),
		Rows:      grid.Rows,
		Cols:      grid.Cols,
		Steps:     st.Steps,
		Moods: map[string]int{
			entity.Sad.String():     sum.Sad,
			entity.Neutral.String(): sum.Neutral,
			entity.Happy.String():   sum.Happy,
		},
		Traps:          res.Traps,
		Puzzles:        res.Puzzles,
		Bonuses:        res.Bonuses,
		PhilosophyUses: st.PhilosophyUses,
		XP:             res.Score.XP,
		Medal:          res.Medal.Name,
		Achievements:   names,
		LevelBefore:    res.LevelBefore,
		LevelAfter:     res.LevelAfter,
		ExitSealed:     g.sealed,
	}
	if err := g.store.AppendRun(run); err != nil {
		g.log.Warn("save run log failed", zap.Error(err))
		g.addMessage("Could not save the run log.")
	}
}

// endReport renders the session analytics, medal, achievements and level
// change as panel lines.
func endReport(res runResult) []string {
	st := res.Stats
	lines := []string{
		"===== SESSION ANALYTICS =====",
		fmt.Sprintf("Total steps taken: %d", st.Steps),
		"Mood counts:",
		fmt.Sprintf("  Sad:     %d", st.Moods[entity.Sad]),
		fmt.Sprintf("  Neutral: %d", st.Moods[entity.Neutral]),
		fmt.Sprintf("  Happy:   %d", st.Moods[entity.Happy]),
		"Obstacles encountered:",
		fmt.Sprintf("  Traps:   %d", res.Traps),
		fmt.Sprintf("  Puzzles: %d", res.Puzzles),
		fmt.Sprintf("  Bonuses: %d", res.Bonuses),
		fmt.Sprintf("Philosophy uses (quotes/exercises): %d", st.PhilosophyUses),
	}

	total := 0
	for _, n := range st.Moods {
		total += n
	}
	if total > 0 {
		lines = append(lines, "", "Mood distribution (ASCII):")
		for m := entity.Sad; m <= entity.Happy; m++ {
			lines = append(lines, fmt.Sprintf("%-8s %s", m.String()+":", moodBar(st.Moods[m])))
		}
	}
	lines = append(lines, "===== END OF SESSION =====", "",
		fmt.Sprintf("Speedrun medal: %s - %s", res.Medal.Name, res.Medal.Blurb))

	if len(res.Score.Achievements) > 0 {
		lines = append(lines, "", "Achievements unlocked:")
		for _, a := range res.Score.Achievements {
			lines = append(lines, fmt.Sprintf("  * %s - %s (+%d XP)", a.Name, a.Desc, a.XP))
		}
	} else {
		lines = append(lines, "", "No achievements this time.")
	}
	lines = append(lines,
		fmt.Sprintf("You earned %d XP this session!", res.Score.XP),
		fmt.Sprintf("Player level went from %d to %d.", res.LevelBefore, res.LevelAfter),
	)
	return lines
}

func moodBar(n int) string {
	if n > maxMoodBar {
		return strings.Repeat("*", maxMoodBar) + fmt.Sprintf(" (%d)", n)
	}
	return strings.Repeat("*", n)
}
