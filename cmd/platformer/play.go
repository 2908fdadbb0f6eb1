package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/sound"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDevice     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a session",
	Long: `Start an interactive session. The game defaults to the platformer.

Controls:
  Left/A, Right/D  - Run
  Space/Up/W       - Jump, again in the air to double jump
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Device options:
  auto    - Pick the profile from the terminal width (default)
  desktop - Smaller player, tighter platforms
  mobile  - Larger player and platforms

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --device mobile --mute
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagDevice, "device", "auto", "Device profile: auto, desktop, mobile")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'platformer list' to see available games)", gameID)
	}

	// Validate flags before the alternate screen takes over
	pcfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		fail("%v", err)
	}
	if _, err := config.ParseDeviceClass(flagDevice); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Device:     flagDevice,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("%v", err)
	}

	var (
		hooks   core.MultiHooks
		tracker *storage.Tracker
	)

	scores, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		// Continue without persistence - game still works
		logger.Warn("high scores disabled", "store", flagStore, "err", err)
	} else {
		tracker = storage.NewTracker(gameID, scores, logger)
		cfg.HighScore = tracker.Begin()
		hooks = append(hooks, tracker)
	}

	audio := sound.NewManager(logger, flagMute)
	if err := audio.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	logger.Debug("audio", "active", audio.Active(), "muted", flagMute)
	hooks = append(hooks, audio)

	game.SetHooks(hooks)

	logger.Info("starting session", "game", gameID, "size", []int{width, height}, "seed", cfg.Seed)
	runErr := tui.Run(game, cfg, pcfg.Input.HoldTicks)

	// Release the device and store before a potential exit
	audio.Close()
	if scores != nil {
		logger.Info("session closed", "game", gameID, "high", tracker.Best())
		scores.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
