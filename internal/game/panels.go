package game

import (
	"fmt"

	"go.uber.org/zap"

	"psymaze/assets"
	"psymaze/internal/system"
)

const panelFooter = "Press any key to continue"

// runPhilosophy opens the support panel. Exercises may be answered into the
// journal.
func (g *Game) runPhilosophy() {
	g.sess.RecordPhilosophyUse()
	sup := g.support
	body := []string{sup.Text}
	redraw := func() { g.renderer.DrawPanel(sup.Title(), body, "") }

	if sup.Kind != assets.SupportExercise {
		g.renderer.DrawPanel(sup.Title(), body, panelFooter)
		g.waitKey(func() { g.renderer.DrawPanel(sup.Title(), body, panelFooter) })
		return
	}
	if !g.confirm("Write a short answer to this exercise?", redraw) {
		g.addMessage(g.text.Messages.ExerciseSkipped)
		return
	}
	answer, ok := g.readLine("> ", redraw)
	if !ok || answer == "" {
		g.addMessage(g.text.Messages.ExerciseSkipped)
		return
	}
	g.journal(g.text.Lessons.Exercise, "Exercise answer: "+answer)
	g.addMessage(g.text.Messages.ExerciseThanks)
}

// runJournal shows the newest journal entries that fit on screen.
func (g *Game) runJournal() {
	lines, err := g.store.ReadJournal()
	if err != nil {
		g.log.Warn("journal read failed", zap.Error(err))
		g.addMessage("Could not read the journal.")
		return
	}
	if len(lines) == 0 {
		g.addMessage(g.text.Messages.JournalEmpty)
		return
	}
	_, h := g.screen.Size()
	if fit := h - 4; fit > 0 && len(lines) > fit {
		lines = lines[len(lines)-fit:]
	}
	body := make([]string, len(lines))
	for i, l := range lines {
		body[i] = "- " + l
	}
	g.waitKey(func() { g.renderer.DrawPanel("Your Life-Lesson Journal", body, panelFooter) })
}

// runEncounter shows an NPC's line and hints, then asks for a reflection.
func (g *Game) runEncounter(enc *system.Encounter) {
	body := []string{fmt.Sprintf("%s: \"%s\"", enc.NPC.Archetype, enc.Line)}
	for _, h := range enc.Hints {
		if text := g.text.Hint(h); text != "" {
			body = append(body, text)
		}
	}
	body = append(body, "", g.text.Messages.ReflectionPrompt)
	title := "You meet the " + enc.NPC.Archetype.String()
	redraw := func() { g.renderer.DrawPanel(title, body, "") }

	answer, ok := g.readLine("> ", redraw)
	if ok && answer != "" {
		g.journal(g.text.Lessons.NPCReflection + " " + answer)
		g.addMessage(g.text.Messages.ReflectionThanks)
	}
	g.journal(g.text.Lessons.NPCMeeting)
}
