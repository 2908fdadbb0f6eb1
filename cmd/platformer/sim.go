package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	flagSessions  int
	flagTicks     int
	flagSimDevice string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless sessions driven by a bot",
	Long: `Run several independent platformer sessions at once, without a
terminal UI. Each session gets its own seed (seed, seed+1, ...) and is
played by a simple bot until it hits an obstacle or runs out of ticks.

Examples:
  platformer sim
  platformer sim --sessions 16 --ticks 7200 --seed 7
  platformer sim --difficulty hard --device mobile`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSessions, "sessions", 4, "Number of concurrent sessions")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks per session")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().StringVar(&flagSimDevice, "device", "desktop", "Device profile: auto, desktop, mobile")
}

// simResult is the outcome of one headless session.
type simResult struct {
	Seed     int64
	Snapshot platformer.Snapshot
	Elapsed  time.Duration
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSessions < 1 || flagTicks < 1 {
		fail("--sessions and --ticks must be positive")
	}
	if _, err := config.LoadPlatformer(flagConfig); err != nil {
		fail("%v", err)
	}
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		fail("%v", err)
	}
	if _, err := config.ParseDeviceClass(flagSimDevice); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]simResult, flagSessions)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = simulate(base+int64(i), flagTicks, logger)
		}(i)
	}
	wg.Wait()

	printSimResults(results)
}

// simulate plays one session with the autopilot. Sessions share nothing, so
// any number can run at once.
func simulate(seed int64, maxTicks int, logger *log.Logger) simResult {
	start := time.Now()

	game := platformer.New()
	game.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Device:     flagSimDevice,
	})

	bot := platformer.NewAutopilot()
	for range maxTicks {
		if res := game.Step(bot.Next(game.World())); res.Ended {
			break
		}
	}

	res := simResult{
		Seed:     seed,
		Snapshot: game.World().Snapshot(),
		Elapsed:  time.Since(start),
	}
	logger.Debug("session finished", "seed", seed, "device", game.World().Device(), "ticks", res.Snapshot.Tick, "score", res.Snapshot.Score, "over", res.Snapshot.GameOver)
	return res
}

func printSimResults(results []simResult) {
	fmt.Printf("  %-20s  %-6s  %-6s  %-9s  %-10s  %s\n", "Seed", "Ticks", "Score", "Distance", "Result", "Time")
	fmt.Printf("  %-20s  %-6s  %-6s  %-9s  %-10s  %s\n", "----", "-----", "-----", "--------", "------", "----")

	best, over := 0, 0
	for _, r := range results {
		outcome := "survived"
		if r.Snapshot.GameOver {
			outcome = "game over"
			over++
		}
		best = max(best, r.Snapshot.Score)
		fmt.Printf("  %-20d  %-6d  %-6d  %-9.0f  %-10s  %s\n",
			r.Seed, r.Snapshot.Tick, r.Snapshot.Score, r.Snapshot.Distance(), outcome, r.Elapsed.Round(time.Millisecond))
	}

	fmt.Println()
	fmt.Printf("Sessions: %d   Game over: %d   Best score: %d\n", len(results), over, best)
}
