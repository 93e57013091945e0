// asteroids is a terminal Asteroids game: fly a ship, shoot the rocks, survive the levels.
//
// Usage:
//
//	asteroids list               - List available variants
//	asteroids play [variant]     - Play a variant (default: asteroids)
//	asteroids menu               - Pick variants interactively
//	asteroids serve              - Start SSH server for remote play
//	asteroids scores [variant]   - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write game and server events to a file
//	--config <path>      - Custom game config (YAML or TOML)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

const defaultGameID = "asteroids"

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
	flagMono       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - blast space rocks in your terminal",
	Long: `Asteroids is a terminal remake of the vector arcade classic.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  asteroids play
  asteroids play asteroids_precise --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids scores --clear`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use a grayscale menu theme")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger returns a file logger for --log-file, or nil when logging is off.
// Bubble Tea owns the terminal, so events never go to stderr during play.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}

// playerName identifies the local player in saved scores.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
