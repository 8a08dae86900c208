// Package game runs a psymaze session in the terminal.
package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"psymaze/assets"
	"psymaze/internal/persist"
	"psymaze/internal/render"
	"psymaze/internal/scripting"
	"psymaze/internal/session"
	"psymaze/internal/system"
)

// maxMessages bounds the message log.
const maxMessages = 50

// Options are the per-run settings taken from config and flags.
type Options struct {
	Level       int // 0 = ask, defaulting to the saved level
	Seed        int64
	MorphAmount int // passed through to session.Config
	NPCCount    int // passed through to session.Config
}

// Game is the top-level orchestrator.
type Game struct {
	screen     tcell.Screen
	renderer   *render.Renderer
	poll       func() tcell.Event
	opts       Options
	store      *persist.Store
	text       *assets.Text
	scorer     *scripting.Engine
	log        *zap.Logger
	sess       *session.Session
	support    assets.Support
	messages   []string
	savedLevel int
	sealed     bool
}

// New creates a Game drawing on an initialized screen.
func New(screen tcell.Screen, opts Options, store *persist.Store, text *assets.Text, scorer *scripting.Engine, log *zap.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		poll:     screen.PollEvent,
		opts:     opts,
		store:    store,
		text:     text,
		scorer:   scorer,
		log:      log,
	}
}

// Run plays one session: level selection, the maze, then the end screen.
// The screen is finalized on return.
func (g *Game) Run() error {
	defer g.screen.Fini()

	g.savedLevel = g.store.LoadLevel()
	level := g.opts.Level
	if level == 0 {
		var ok bool
		level, ok = g.runLevelSelect(g.savedLevel)
		if !ok {
			return nil
		}
	}
	if err := g.start(level); err != nil {
		return err
	}
	if !g.play() {
		g.log.Info("session abandoned", zap.Int("steps", g.sess.Stats().Steps))
		return nil
	}
	g.finish()
	return nil
}

// start builds the session for level.
func (g *Game) start(level int) error {
	sess, err := session.New(session.Config{
		Level:       level,
		Seed:        g.opts.Seed,
		MorphAmount: g.opts.MorphAmount,
		NPCCount:    g.opts.NPCCount,
		Dialogue:    g.text.ArchetypeDialogue(),
		Logger:      g.log,
	})
	if err != nil {
		return fmt.Errorf("start level %d: %w", level, err)
	}
	g.sess = sess
	g.messages = nil
	g.sealed = false
	g.support = g.text.RandomSupport(sess.Rand())
	grid := sess.Grid()
	g.addMessage(fmt.Sprintf("Starting level %d -> maze size %d x %d", sess.Level(), grid.Rows, grid.Cols))
	g.addMessage("Reach E at the bottom-right. Your mood reshapes the maze.")
	return nil
}

// play runs the turn loop until the exit is reached. It returns false when
// the player quits or the screen goes away.
func (g *Game) play() bool {
	for !g.sess.Finished() {
		g.draw()
		ev := g.poll()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				if g.confirmQuit(g.draw) {
					return false
				}
				continue
			}
			g.processAction(action)
			g.support = g.text.RandomSupport(g.sess.Rand())
		}
	}
	g.draw()
	return true
}

func (g *Game) draw() {
	g.renderer.DrawMap(g.sess)
	g.renderer.DrawHUD(g.status(), g.support.Title()+": "+g.support.Text, g.messages)
}

func (g *Game) status() render.Status {
	st := g.sess.Stats()
	return render.Status{
		Level:          g.sess.Level(),
		Mood:           g.sess.Player().Mood,
		Steps:          st.Steps,
		Counters:       g.sess.Counters(),
		PhilosophyUses: st.PhilosophyUses,
		JumpDir:        g.sess.LastDirection(),
		Sealed:         g.sealed,
	}
}

// processAction handles one player action.
func (g *Game) processAction(action Action) {
	if dir, ok := actionToDirection(action); ok {
		out := g.sess.ApplyMove(dir)
		if !out.Success {
			g.addMessage(g.text.Messages.InvalidMove)
			return
		}
		g.afterTurn(out.Turn)
		return
	}

	switch action {
	case ActionJump:
		out := g.sess.ApplyJump(g.sess.LastDirection())
		switch out.Result {
		case system.JumpOK:
			g.addMessage(g.text.Messages.Jumped)
			g.afterTurn(out.Turn)
		case system.JumpBlocked:
			g.addMessage(g.text.Messages.BlockedJump)
		default:
			g.addMessage(g.text.Messages.InvalidJump)
		}
	case ActionPhilosophy:
		g.runPhilosophy()
	case ActionJournal:
		g.runJournal()
	case ActionSnapshot:
		g.saveSnapshot()
	}
}

// afterTurn narrates a landed step and records its journal lessons.
func (g *Game) afterTurn(t session.Turn) {
	if t.Effect.Outcome != system.OutcomeNone {
		ot := g.text.Outcome(t.Effect.Outcome)
		g.addMessage(ot.Message)
		g.journal(ot.Lesson)
	}
	if t.Encounter != nil {
		g.runEncounter(t.Encounter)
	}
	if t.MoodChanged {
		g.addMessage(g.text.Messages.Morph)
	}
	if !t.ExitReachable && !g.sealed {
		g.addMessage(g.text.Messages.Sealed)
	}
	g.sealed = !t.ExitReachable
}

func (g *Game) saveSnapshot() {
	path, err := g.store.SaveSnapshot(g.sess.Grid(), g.sess.Player(), g.sess.Exit())
	if err != nil {
		g.log.Warn("snapshot failed", zap.Error(err))
		g.addMessage("Could not save snapshot.")
		return
	}
	g.addMessage("Run snapshot saved to " + path)
}

// journal appends lines to the journal file. Failures are logged and
// reported, never fatal.
func (g *Game) journal(lines ...string) {
	if err := g.store.AppendJournal(lines...); err != nil {
		g.log.Warn("journal write failed", zap.Error(err))
		g.addMessage("Could not write to the journal.")
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
