package scenes

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/registry"
)

func init() {
	registry.Register("ring", func() registry.Scene { return &Ring{} })
}

// Ring fires expanding rings of round bullets from a boss, each ring offset
// by half a bullet spacing.
type Ring struct {
	rt   core.RuntimeConfig
	boss *core.Body

	Count    int     // bullets per ring
	Interval int     // ticks between rings
	Speed    float64 // units per tick
	Radius   float64
}

func (r *Ring) ID() string    { return "ring" }
func (r *Ring) Title() string { return "Ring bursts" }

// Reset places the boss and restores the default pattern.
func (r *Ring) Reset(cfg core.RuntimeConfig, arena *engine.Arena) {
	r.rt = cfg
	r.boss = boss(cfg)
	r.Count, r.Interval, r.Speed, r.Radius = 24, 30, 2.5, 5
	arena.SpawnEntity(r.boss)
}

// Step fires a ring every Interval ticks.
func (r *Ring) Step(tick int, arena *engine.Arena) {
	var fresh []*bullet
	if tick%r.Interval == 0 {
		center := r.boss.Position()
		offset := 0.0
		if (tick/r.Interval)%2 == 1 {
			offset = math.Pi / float64(r.Count)
		}
		for i := 0; i < r.Count; i++ {
			angle := offset + 2*math.Pi*float64(i)/float64(r.Count)
			shape := circleAt(center.Add(polar(30, angle)), r.Radius)
			fresh = append(fresh, newBullet(shape, polar(r.Speed, angle), r.boss))
		}
	}
	advance(arena, r.rt, fresh...)
}
