// breakout is a brick breaker for the terminal, played with the mouse.
//
// Usage:
//
//	breakout                 - Play (same as "breakout play")
//	breakout play            - Play
//	breakout config          - Print the effective configuration as YAML
//	breakout list            - List the registered games
//	breakout version         - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker played with the mouse.

Click to serve, drag to move the paddle, clear the wall before you run
out of balls.

Examples:
  breakout
  breakout --difficulty easy
  breakout --config ./my-breakout.yaml --seed 42
  breakout config > ~/.arcade/configs/breakout.yaml`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// logger is built in setup; the terminal belongs to the TUI, so logs go to
// --log-file or nowhere.
var logger = log.New(io.Discard)

// logFile is the open --log-file handle, closed by closeLog.
var logFile *os.File

// setup validates global flags and hands them to the game package.
func setup(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "breakout",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

// teardown runs after a successful command.
func teardown(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// closeLog closes the log file, if any, and points logging back at
// io.Discard. Safe to call more than once.
func closeLog() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	logger = log.New(io.Discard)
	breakout.SetLogger(logger)
	if err := f.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}
