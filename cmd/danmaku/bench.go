package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/metrics"
	"github.com/vovakirdan/danmaku/internal/registry"
	"github.com/vovakirdan/danmaku/internal/scenes"
	"github.com/vovakirdan/danmaku/internal/storage"
)

var (
	benchTuning       tuning
	flagTicks         int
	flagMetricsAddr   string
	flagNoSave        bool
	flagRealtime      bool
	flagMetricsLinger time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench <scene>",
	Short: "Run a scene headless and record the timings",
	Long: `Run the given scene for a fixed number of ticks without a display and
report the collision workload: bullets indexed, narrow-phase tests, hits and
the mean tick time. The result is stored in the run history unless --no-save
is given.

With --metrics-addr the Prometheus metrics of the run are served on /metrics
while the bench runs. --realtime paces the ticks at the configured tick rate
instead of running flat out, which is useful while watching the metrics.

Examples:
  danmaku bench ring
  danmaku bench spiral --ticks 3000 --method gjk
  danmaku bench rain --density dense
  danmaku bench lasers --chunks 24x18 --metrics-addr :9100 --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchTuning.register(benchCmd)
	benchCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	benchCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	benchCmd.Flags().DurationVar(&flagMetricsLinger, "metrics-linger", 0, "Keep serving metrics this long after the run")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
	benchCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured tick rate")
}

func runBench(cmd *cobra.Command, args []string) {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		fail("unknown scene %q\nRun 'danmaku scenes' to see available scenes.", sceneID)
	}
	if flagTicks <= 0 {
		fail("--ticks must be positive")
	}

	s, err := benchTuning.resolve()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(s.cfg.Debug).With("scene", sceneID)

	scene, err := registry.Create(sceneID)
	if err != nil {
		fail("creating scene: %v", err)
	}

	collector := metrics.New()
	runner, err := scenes.NewRunner(scene, s.runtime, engine.Options{
		Method:   s.method,
		ChunksX:  s.chunksX,
		ChunksY:  s.chunksY,
		Logger:   logger,
		Recorder: collector,
	})
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var srv *http.Server
	if flagMetricsAddr != "" {
		srv = serveMetrics(flagMetricsAddr, collector)
		logger.Info("serving metrics", "addr", flagMetricsAddr, "path", "/metrics")
	}

	logger.Info("bench started", "ticks", flagTicks, "method", s.method, "chunks_x", s.chunksX, "chunks_y", s.chunksY)
	var limiter *rate.Limiter
	if flagRealtime {
		limiter = rate.NewLimiter(rate.Limit(s.runtime.TickRate), 1)
	}
	elapsed, ticks := benchLoop(ctx, runner, flagTicks, limiter)
	if ticks < flagTicks {
		logger.Warn("bench interrupted", "ticks", ticks)
	}

	st := runner.System().Stats()
	run := storage.Run{
		Scene:       sceneID,
		Method:      s.method.String(),
		ChunksX:     s.chunksX,
		ChunksY:     s.chunksY,
		Ticks:       st.Ticks,
		Bullets:     st.Indexed,
		NarrowTests: st.NarrowTests,
		PlayerHits:  st.PlayerHits,
		EntityHits:  st.EntityHits,
		Errors:      st.Errors,
	}
	if st.Ticks > 0 {
		run.MeanTickUS = float64(elapsed.Microseconds()) / float64(st.Ticks)
	}
	printRun(scene.Title(), run, st)

	if !flagNoSave && st.Ticks > 0 {
		if err := saveRun(run); err != nil {
			logger.Warn("run not recorded", "err", err)
		} else {
			logger.Debug("run recorded", "db", flagDBPath)
		}
	}

	if srv != nil {
		if flagMetricsLinger > 0 {
			logger.Info("metrics still served", "for", flagMetricsLinger)
			select {
			case <-time.After(flagMetricsLinger):
			case <-ctx.Done():
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "err", err)
		}
	}
}

// benchLoop steps the runner until ticks are done or ctx is cancelled. A
// non-nil limiter paces the ticks. The elapsed time covers the collision work
// of every tick.
func benchLoop(ctx context.Context, runner *scenes.Runner, ticks int, limiter *rate.Limiter) (time.Duration, int) {
	var elapsed time.Duration
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return elapsed, i
			}
		}
		if ctx.Err() != nil {
			return elapsed, i
		}
		// Undecidable pairs are counted in the stats.
		frame, _ := runner.Step(in)
		elapsed += frame.Duration
	}
	return elapsed, ticks
}

func serveMetrics(addr string, c *metrics.Collector) *http.Server {
	srv := &http.Server{Addr: addr, Handler: metrics.NewRouter(c), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error: metrics server: %v\n", err)
		}
	}()
	return srv
}

func saveRun(run storage.Run) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.SaveRun(run)
	return err
}

func printRun(title string, run storage.Run, st engine.Stats) {
	fmt.Printf("Bench - %s\n", title)
	fmt.Println()
	fmt.Printf("  %-14s %s\n", "Method", run.Method)
	fmt.Printf("  %-14s %d×%d\n", "Grid", run.ChunksX, run.ChunksY)
	fmt.Printf("  %-14s %d\n", "Ticks", run.Ticks)
	fmt.Printf("  %-14s %d\n", "Bullets", run.Bullets)
	if run.Ticks > 0 {
		fmt.Printf("  %-14s %.1f\n", "Bullets/tick", float64(run.Bullets)/float64(run.Ticks))
		fmt.Printf("  %-14s %.2f\n", "Near/tick", float64(st.Candidates)/float64(run.Ticks))
	}
	fmt.Printf("  %-14s %d\n", "Narrow tests", run.NarrowTests)
	fmt.Printf("  %-14s %d\n", "Player hits", run.PlayerHits)
	fmt.Printf("  %-14s %d\n", "Entity hits", run.EntityHits)
	if run.Errors > 0 {
		fmt.Printf("  %-14s %d\n", "Errors", run.Errors)
	}
	fmt.Printf("  %-14s %.2f µs\n", "Mean tick", run.MeanTickUS)
}
