package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-runner/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the high score and run history",
	Long: `Delete every recorded run and reset the high score to 0.

Examples:
  runner reset
  runner reset --yes --db ./runner.db`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to reset, --db is empty")
		os.Exit(1)
	}

	if !flagResetYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), flagDBPath) {
		fmt.Println("Aborted.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("High score and run history cleared.")
}

// confirm asks on out and reads a yes/no answer from in.
func confirm(in io.Reader, out io.Writer, path string) bool {
	fmt.Fprintf(out, "Clear the high score and all runs in %s? [y/N] ", path)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
