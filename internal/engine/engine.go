// Package engine is the collision facade the game loop talks to. Each tick it
// rebuilds the spatial grid from the world's bullets, then resolves bullets
// against the player (grid pre-filtered) and against the other entities.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/space"
)

// World is the read side of the object pools. Slices returned by Bullets and
// Entities are snapshots the engine only reads.
type World interface {
	Bullets() []core.Collidable
	Entities() []core.Collidable
	// Player returns nil when there is no player this tick.
	Player() core.Collidable
}

// Recorder receives per-tick figures, typically a metrics.Collector.
type Recorder interface {
	ObserveTick(d time.Duration, bullets, playerCell int)
	AddNarrowTests(n int)
	AddHits(target string, n int)
	AddErrors(n int)
}

// Options configures a System.
type Options struct {
	Method           collide.Method
	ChunksX, ChunksY int
	Logger           *log.Logger
	Recorder         Recorder
}

// Hit is one bullet touching one target.
type Hit struct {
	Bullet core.Collidable
	Target core.Collidable
}

// Frame is the outcome of one tick.
type Frame struct {
	PlayerHits []core.Collidable
	EntityHits []Hit
	Duration   time.Duration
}

// Stats accumulates counters since the system was created.
type Stats struct {
	Ticks       int64
	Indexed     int64 // bullets inserted into the grid, summed over ticks
	Candidates  int64 // bullets sharing a cell with the player
	NarrowTests int64
	PlayerHits  int64
	EntityHits  int64
	Errors      int64
}

// System runs collision queries against a World.
type System struct {
	world   World
	runtime core.RuntimeConfig
	tester  *collide.Tester
	grid    *space.Grid
	logger  *log.Logger
	rec     Recorder

	dirty   bool
	indexed int
	stats   Stats
}

// New creates a system over world. The grid covers the play area of rt.
func New(world World, rt core.RuntimeConfig, opts Options) (*System, error) {
	if world == nil {
		return nil, errors.New("engine: nil world")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	grid, err := space.NewGrid(opts.ChunksX, opts.ChunksY, rt.PlayArea())
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	grid.SetLogger(logger)

	return &System{
		world:   world,
		runtime: rt,
		tester:  collide.NewTester(opts.Method, logger),
		grid:    grid,
		logger:  logger,
		rec:     opts.Recorder,
		dirty:   true,
	}, nil
}

// Grid exposes the spatial grid for debug rendering.
func (s *System) Grid() *space.Grid {
	return s.grid
}

// Runtime returns the screen configuration in use.
func (s *System) Runtime() core.RuntimeConfig {
	return s.runtime
}

// Method returns the active narrow-phase method.
func (s *System) Method() collide.Method {
	return s.tester.Method
}

// Stats returns the accumulated counters.
func (s *System) Stats() Stats {
	return s.stats
}

// SetFallback installs a narrow-phase hook for unsupported shape pairs.
func (s *System) SetFallback(fn collide.FallbackFunc) {
	s.tester.Fallback = fn
}

// Collide runs the broad and narrow phase on two objects.
func (s *System) Collide(a, b core.Collidable) (bool, error) {
	return s.CollideShapes(a.Shape(), b.Shape())
}

// CollideShapes runs the broad and narrow phase on two shapes.
func (s *System) CollideShapes(a, b geom.Shape) (bool, error) {
	s.stats.NarrowTests++
	hit, err := s.tester.Collide(a, b)
	if err != nil {
		s.stats.Errors++
	}
	return hit, err
}

// PretestOnly compares bounding boxes only.
func (s *System) PretestOnly(a, b core.Collidable) bool {
	return collide.PretestOnly(a.Shape(), b.Shape())
}

// IsOffScreen reports whether c's reference point left the play area.
func (s *System) IsOffScreen(c core.Collidable) bool {
	return s.runtime.IsOffScreen(c.Position())
}

// RebuildSpace re-indexes every on-screen bullet and the player.
func (s *System) RebuildSpace() {
	bullets := s.world.Bullets()
	indexed := 0
	s.grid.Rebuild(bullets, s.world.Player(), func(c core.Collidable) bool {
		if s.IsOffScreen(c) {
			return true
		}
		indexed++
		return false
	})
	s.indexed = indexed
	s.stats.Indexed += int64(indexed)
	s.dirty = false
}

// IsInPlayerCells reports whether the object shares a grid cell with the
// player as of the last rebuild.
func (s *System) IsInPlayerCells(c core.Collidable) bool {
	return s.grid.IsInPlayerCells(c.ID())
}

// SetChunks changes the grid resolution and rebuilds it.
func (s *System) SetChunks(x, y int) error {
	if err := s.grid.Resize(x, y); err != nil {
		return fmt.Errorf("engine: set chunks: %w", err)
	}
	s.logger.Debug("grid resized", "chunks_x", x, "chunks_y", y)
	s.RebuildSpace()
	return nil
}

// SetScreen adopts a new screen configuration, refreshes the grid area and
// rebuilds it.
func (s *System) SetScreen(rt core.RuntimeConfig) error {
	if err := s.grid.Refresh(rt.PlayArea()); err != nil {
		return fmt.Errorf("engine: set screen: %w", err)
	}
	s.runtime = rt
	s.RebuildSpace()
	return nil
}

// SetMethod switches the narrow-phase method. The warning for
// MethodPretestOnly is logged once per tester, so a new tester is created.
func (s *System) SetMethod(m collide.Method) {
	if m == s.tester.Method {
		return
	}
	fallback := s.tester.Fallback
	s.tester = collide.NewTester(m, s.logger)
	s.tester.Fallback = fallback
	s.logger.Debug("collision method changed", "method", m)
}

// PlayerHits returns the bullets touching the player. Only bullets sharing a
// grid cell with the player are tested, and every candidate goes through the
// full test. Undecidable pairs are skipped and reported in the joined error.
func (s *System) PlayerHits() ([]core.Collidable, error) {
	player := s.world.Player()
	if player == nil || core.IsInvincible(player) {
		return nil, nil
	}
	if s.dirty {
		s.RebuildSpace()
	}

	var (
		hits []core.Collidable
		errs []error
	)
	tests := 0
	for _, b := range s.world.Bullets() {
		if !core.TargetsOf(b).Has(core.TargetPlayer) || core.SameSource(b, player) {
			continue
		}
		if !s.grid.IsInPlayerCells(b.ID()) {
			continue
		}
		s.stats.Candidates++
		tests++

		hit, err := s.Collide(b, player)
		if err != nil {
			errs = append(errs, fmt.Errorf("engine: bullet %s: %w", b.ID(), err))
			continue
		}
		if hit {
			hits = append(hits, b)
		}
	}

	s.stats.PlayerHits += int64(len(hits))
	s.record("player", tests, len(hits), len(errs))
	return hits, errors.Join(errs...)
}

// EntityHits returns every bullet and entity pair in contact. Entities are
// tested against all on-screen bullets that target entities.
func (s *System) EntityHits() ([]Hit, error) {
	entities := s.world.Entities()
	if len(entities) == 0 {
		return nil, nil
	}

	var (
		hits []Hit
		errs []error
	)
	tests := 0
	for _, b := range s.world.Bullets() {
		if !core.TargetsOf(b).Has(core.TargetEntities) || s.IsOffScreen(b) {
			continue
		}
		for _, e := range entities {
			if core.SameSource(b, e) || core.IsInvincible(e) {
				continue
			}
			tests++
			hit, err := s.Collide(b, e)
			if err != nil {
				errs = append(errs, fmt.Errorf("engine: bullet %s on %s: %w", b.ID(), e.ID(), err))
				continue
			}
			if hit {
				hits = append(hits, Hit{Bullet: b, Target: e})
			}
		}
	}

	s.stats.EntityHits += int64(len(hits))
	s.record("entity", tests, len(hits), len(errs))
	return hits, errors.Join(errs...)
}

func (s *System) record(target string, tests, hits, errs int) {
	if s.rec == nil {
		return
	}
	s.rec.AddNarrowTests(tests)
	s.rec.AddHits(target, hits)
	if errs > 0 {
		s.rec.AddErrors(errs)
	}
}

// Tick runs one frame: rebuild, player hits, entity hits. Errors from both
// queries are joined; the hits that could be decided are still returned.
func (s *System) Tick() (Frame, error) {
	start := time.Now()

	s.RebuildSpace()
	playerHits, perr := s.PlayerHits()
	entityHits, eerr := s.EntityHits()

	f := Frame{
		PlayerHits: playerHits,
		EntityHits: entityHits,
		Duration:   time.Since(start),
	}
	s.stats.Ticks++
	if s.rec != nil {
		s.rec.ObserveTick(f.Duration, s.indexed, s.grid.PlayerCount())
	}
	return f, errors.Join(perr, eerr)
}
