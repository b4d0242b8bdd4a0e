// danmaku drives the bullet-hell collision core from the terminal.
//
// Usage:
//
//	danmaku scenes           - List available scenes
//	danmaku bench <scene>    - Run a scene headless and record the timings
//	danmaku runs [scene]     - Show recorded bench runs
//	danmaku view <scene>     - Watch a scene with the grid overlay
//	danmaku snapshot <scene> - Save a PNG of a scene with the grid overlay
//	danmaku verify           - Cross-check SAT and GJK on random shapes
//
// Global flags:
//
//	--config <path> - Collision config YAML (default: search ~/.danmaku/configs, ./configs)
//	--debug         - Enable debug logging
//	--db <path>     - Run history database (default: ~/.danmaku/runs.db)
//	--seed <value>  - RNG seed for the scenes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/danmaku/internal/scenes"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "danmaku",
	Short: "Danmaku - collision core for bullet-hell engines",
	Long: `Danmaku is the collision-detection and spatial-partitioning core of a
frame-locked bullet-hell engine, with synthetic scenes to exercise it.

Available commands:
  scenes   - Show all available scenes
  bench    - Run a scene headless and record the timings
  runs     - Show recorded bench runs
  view     - Watch a scene live in the terminal
  snapshot - Save a PNG of a scene with the grid overlay
  verify   - Cross-check the narrow-phase methods

Examples:
  danmaku scenes
  danmaku bench ring --ticks 1200 --method gjk
  danmaku bench rain --density dense --metrics-addr :9100
  danmaku runs ring
  danmaku view lasers --chunks 16x12
  danmaku snapshot spiral --tick 300`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to collision config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.danmaku/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed for the scenes")

	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(verifyCmd)
}

// newLogger builds the command logger. The config's debug switch and the
// --debug flag both enable debug output.
func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "danmaku",
	})
	if debug || flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
