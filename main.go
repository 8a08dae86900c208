// psymaze is a terminal maze whose walls move with the player's mood.
//
// Usage:
//
//	psymaze [-config psymaze.toml] [-level N] [-seed S]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"psymaze/assets"
	"psymaze/internal/config"
	"psymaze/internal/game"
	"psymaze/internal/persist"
	"psymaze/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to psymaze.toml (default: $PSYMAZE_CONFIG or the user config dir)")
	level := flag.Int("level", 0, "start level 1-50 (0 = choose on the level screen)")
	seed := flag.Int64("seed", 0, "maze seed (0 = seed from the clock)")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	if *level != 0 {
		cfg.Game.Level = *level
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	dir, err := persist.DataDir(cfg.Game.DataDir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	store, err := persist.Open(dir)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging, store.Path(persist.LogFile))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	text, err := assets.Load()
	if err != nil {
		return err
	}
	scorer, err := scripting.NewEngine(log)
	if err != nil {
		return err
	}
	defer scorer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	opts := gameOptions(cfg.Game)
	log.Info("psymaze starting",
		zap.String("data_dir", dir),
		zap.Int("level", opts.Level),
		zap.Int64("seed", opts.Seed),
	)
	return game.New(screen, opts, store, text, scorer, log).Run()
}

// gameOptions maps config values onto the session's conventions, where zero
// selects a default and a negative count turns the feature off.
func gameOptions(cfg config.GameConfig) game.Options {
	opts := game.Options{
		Level:       cfg.Level,
		Seed:        cfg.Seed,
		MorphAmount: cfg.MorphAmount,
		NPCCount:    cfg.NPCCount,
	}
	if opts.MorphAmount == 0 {
		opts.MorphAmount = -1
	}
	if opts.NPCCount == 0 {
		opts.NPCCount = -1
	}
	return opts
}

// newLogger builds a zap logger writing to path. The terminal belongs to the
// game, so nothing goes to stderr.
func newLogger(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	return zapCfg.Build()
}
