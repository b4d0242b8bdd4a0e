package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/platform/tui"
	"github.com/vovakirdan/danmaku/internal/registry"
	"github.com/vovakirdan/danmaku/internal/scenes"
)

var (
	viewTuning tuning
	flagMono   bool
)

var viewCmd = &cobra.Command{
	Use:   "view <scene>",
	Short: "Watch a scene live in the terminal",
	Long: `Run the given scene in the terminal with the spatial grid drawn over it.
Bullets sharing a cell with the player are highlighted.

Controls:
  WASD/Arrows - Move the player
  P/Space     - Pause
  N           - Step one tick while paused
  M           - Cycle method (sat, gjk, pretest)
  +/-         - Finer / coarser grid
  G           - Toggle the grid overlay
  R           - Restart the scene
  Q/Ctrl+C    - Quit

Examples:
  danmaku view ring
  danmaku view lasers --method gjk
  danmaku view rain --chunks 8x6 --mono`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewTuning.register(viewCmd)
	viewCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the grayscale theme")
}

func runView(cmd *cobra.Command, args []string) {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		fail("unknown scene %q\nRun 'danmaku scenes' to see available scenes.", sceneID)
	}

	s, err := viewTuning.resolve()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		fail("creating scene: %v", err)
	}

	// The viewer owns the terminal; only warnings reach stderr.
	logger := newLogger(s.cfg.Debug)
	if logger.GetLevel() > log.DebugLevel {
		logger.SetLevel(log.WarnLevel)
	}

	runner, err := scenes.NewRunner(scene, s.runtime, engine.Options{
		Method:  s.method,
		ChunksX: s.chunksX,
		ChunksY: s.chunksY,
		Logger:  logger,
	})
	if err != nil {
		fail("%v", err)
	}

	theme := tui.DefaultTheme()
	if flagMono {
		theme = tui.MonochromeTheme()
	}

	if err := tui.Run(runner, s.runtime, theme, width, height); err != nil {
		fail("running viewer: %v", err)
	}
}
