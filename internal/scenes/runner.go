package scenes

import (
	"fmt"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/registry"
)

const (
	playerRadius = 4
	playerSpeed  = 4
	// Ticks of invincibility after the player is hit.
	graceTicks = 60
)

// Runner drives one scene against the collision engine: it moves the player
// from input, steps the pattern, resolves hits and despawns the bullets that
// connected.
type Runner struct {
	scene  registry.Scene
	arena  *engine.Arena
	system *engine.System
	player *core.Body
	rt     core.RuntimeConfig

	tick  int
	grace int
}

// NewRunner creates a runner for scene on the screen described by rt.
func NewRunner(scene registry.Scene, rt core.RuntimeConfig, opts engine.Options) (*Runner, error) {
	arena := engine.NewArena()
	sys, err := engine.New(arena, rt, opts)
	if err != nil {
		return nil, fmt.Errorf("scenes: %w", err)
	}

	r := &Runner{scene: scene, arena: arena, system: sys, rt: rt}
	r.Restart()
	return r, nil
}

// Restart clears the arena and resets the scene and the player.
func (r *Runner) Restart() {
	r.arena.Reset()
	r.tick, r.grace = 0, 0

	area := r.rt.PlayArea()
	start := geom.V(area.X+area.W/2, area.Bottom()-area.H/8)
	r.player = core.NewBody(geom.Circle{Center: start, Radius: playerRadius})
	r.arena.SetPlayer(r.player)

	r.scene.Reset(r.rt, r.arena)
}

// Step advances one tick.
func (r *Runner) Step(in core.InputFrame) (engine.Frame, error) {
	r.movePlayer(in)
	if r.grace > 0 {
		r.grace--
		r.updatePlayer(func(p *core.Body) { p.Shield = r.grace > 0 })
	}

	r.scene.Step(r.tick, r.arena)
	frame, err := r.system.Tick()
	r.tick++

	r.arena.Despawn(spent(frame)...)

	if len(frame.PlayerHits) > 0 {
		r.grace = graceTicks
		r.updatePlayer(func(p *core.Body) { p.Shield = true })
	}
	return frame, err
}

func (r *Runner) movePlayer(in core.InputFrame) {
	dx, dy := in.Movement()
	if dx == 0 && dy == 0 {
		return
	}
	c := r.player.Form.(geom.Circle)
	area := r.rt.PlayArea()
	c.Center = geom.V(
		geom.ClampF(c.Center[0]+dx*playerSpeed, area.X, area.Right()),
		geom.ClampF(c.Center[1]+dy*playerSpeed, area.Y, area.Bottom()),
	)
	r.updatePlayer(func(p *core.Body) { p.Form = c })
}

// updatePlayer publishes an edited copy of the player, keeping its id.
// Bodies already handed to readers are never written.
func (r *Runner) updatePlayer(edit func(*core.Body)) {
	p := *r.player
	edit(&p)
	r.player = &p
	r.arena.SetPlayer(r.player)
}

// Scene returns the scene being run.
func (r *Runner) Scene() registry.Scene { return r.scene }

// System returns the collision system.
func (r *Runner) System() *engine.System { return r.system }

// Arena returns the world the scene populates.
func (r *Runner) Arena() *engine.Arena { return r.arena }

// Player returns the current player body. Each change publishes a new body.
func (r *Runner) Player() *core.Body { return r.player }

// Ticks returns the number of ticks run since the last restart.
func (r *Runner) Ticks() int { return r.tick }
