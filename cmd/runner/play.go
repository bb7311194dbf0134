package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-runner/internal/audio"
	"github.com/vovakirdan/block-runner/internal/core"
	"github.com/vovakirdan/block-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter        - Start a run / continue after game over
  Space/Up/W   - Jump
  Tab          - Run history (between runs)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options (collision forgiveness only):
  easy   - Generous hitboxes
  normal - Default hitboxes
  hard   - Tight hitboxes

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --mute
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "runner")

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Mute:     flagMute,
	}

	sound := audio.NewSoundManager()
	if !rt.Mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
	}
	defer sound.Close()

	store := openStore(flagDBPath, logger)

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Sound:   sound,
		Logger:  logger,
	})

	// Close store before potential exit
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
