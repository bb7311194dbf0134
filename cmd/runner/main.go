// runner is a terminal side-scroller: jump over the blocks, survive as
// long as you can, beat your high score.
//
// Usage:
//
//	runner                   - Play (same as "runner play")
//	runner play              - Play in this terminal
//	runner scores            - Show the best or most recent runs
//	runner serve             - Start SSH server for remote play
//	runner reset             - Clear the high score and run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawn timing
//	--db <path>           - Set database path ("" keeps scores in memory)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal or hard collision forgiveness
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Block Runner - jump the blocks in your terminal",
	Long: `Block Runner is a side-scrolling arcade game for the terminal.
The runner moves on its own; jump over the blocks and survive as long as
you can. The score is the time survived.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the run history
  serve    - Start SSH server for remote play
  reset    - Clear the high score and run history

Examples:
  runner
  runner play --difficulty easy
  runner scores --recent
  runner serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runner.db", `Path to scores database ("" = in memory)`)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

// newLogger creates a logger writing to w at the --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// openLogFile opens ~/.arcade/runner.log for appending. The alternate
// screen owns stdout while playing, so the game logs to a file.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig loads the runner config and applies --difficulty.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset, "margin", cfg.Collision.Margin)
	return cfg, nil
}

// openStore opens the database at path. An empty path, or a database that
// cannot be opened, yields an in-memory store so the game still runs.
func openStore(path string, logger *log.Logger) storage.Backend {
	if path == "" {
		return storage.NewMemory()
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database, keeping scores in memory", "path", path, "error", err)
		return storage.NewMemory()
	}
	return store
}
