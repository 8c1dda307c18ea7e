package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/audio"
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHitboxes   bool
	flagSound      bool
	flagHold       time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD/HJKL - Hop one tile
  P/Space          - Pause
  R                - Restart the run
  M                - Mute sounds
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, difficulty scaling off

Terminals only report key presses. A key counts as held until no repeat
arrives for --hold; raise it if a held key hops twice.

Examples:
  frogger play frogger
  frogger play frogger --difficulty hard
  frogger play frogger_classic --hitboxes
  frogger play frogger --config ./my-frogger.yaml --sound`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Outline every collision box")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound cues")
		cmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'frogger list' to see available variants", gameID)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sounds := openSounds()
	if sounds != nil {
		defer sounds.Cleanup()
	}

	if err := tui.Run(game, store, runtimeConfig(), gameOptions(sounds)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyGameFlags hands the config flags to the game package and warns early
// about a config file the game would replace with defaults.
func applyGameFlags() {
	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)

	if _, err := config.LoadFrogger(flagConfig); err != nil {
		logger.Warn("using built-in defaults", "config", flagConfig, "error", err)
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Hitboxes: flagHitboxes,
	}
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSounds starts audio when --sound is set. Nil runs silent.
func openSounds() *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	return sounds
}

// gameOptions collects the per-run options from the flags.
func gameOptions(sounds *audio.SoundManager) tui.GameOptions {
	return tui.GameOptions{
		Player:     playerName(),
		Sounds:     sounds,
		HoldWindow: flagHold,
	}
}

func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
