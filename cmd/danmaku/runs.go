package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/danmaku/internal/registry"
	"github.com/vovakirdan/danmaku/internal/storage"
)

var (
	flagRunsLimit int
	flagFastest   bool
	flagClear     bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scene]",
	Short: "Show recorded bench runs",
	Long: `Display the latest bench runs, optionally for a single scene.

Examples:
  danmaku runs
  danmaku runs ring
  danmaku runs ring --fastest
  danmaku runs ring --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagFastest, "fastest", false, "Order by mean tick time instead of date")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the scene")
}

func runRuns(cmd *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fail("unknown scene %q\nRun 'danmaku scenes' to see available scenes.", sceneID)
		}
	}
	if (flagFastest || flagClear) && sceneID == "" {
		fail("--fastest and --clear need a scene")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(sceneID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs of %s.\n", sceneID)
		return
	}

	var runs []storage.Run
	if flagFastest {
		runs, err = store.FastestRuns(sceneID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(sceneID, flagRunsLimit)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if sceneID == "" {
		fmt.Println("Bench runs - all scenes")
	} else {
		fmt.Printf("Bench runs - %s\n", sceneID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'danmaku bench <scene>' to record one.")
		return
	}

	fmt.Printf("  %-8s  %-7s  %-7s  %7s  %10s  %8s  %6s  %10s  %s\n",
		"Scene", "Method", "Grid", "Ticks", "Bullets", "Tests", "Hits", "Tick µs", "Date")
	fmt.Printf("  %-8s  %-7s  %-7s  %7s  %10s  %8s  %6s  %10s  %s\n",
		"-----", "------", "----", "-----", "-------", "-----", "----", "-------", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-7s  %-7s  %7d  %10d  %8d  %6d  %10.2f  %s\n",
			r.Scene, r.Method, fmt.Sprintf("%dx%d", r.ChunksX, r.ChunksY),
			r.Ticks, r.Bullets, r.NarrowTests, r.PlayerHits+r.EntityHits, r.MeanTickUS,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if sceneID == "" {
		return
	}
	stats, err := store.SceneStats(sceneID)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Printf("  %d runs, %d ticks. Best %.2f µs, average %.2f µs per tick.\n",
		stats.Runs, stats.TotalTicks, stats.BestTickUS, stats.AvgTickUS)
}
