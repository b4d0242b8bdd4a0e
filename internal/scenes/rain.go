package scenes

import (
	"math/rand"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/registry"
)

func init() {
	registry.Register("rain", func() registry.Scene { return &Rain{} })
}

// Rain drops rectangles and small circles from the top edge at random
// columns. The RNG is seeded from the runtime config so runs are repeatable.
type Rain struct {
	rt  core.RuntimeConfig
	rng *rand.Rand

	PerTick int
}

func (r *Rain) ID() string    { return "rain" }
func (r *Rain) Title() string { return "Needle rain" }

func (r *Rain) Reset(cfg core.RuntimeConfig, _ *engine.Arena) {
	r.rt = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.PerTick = 3
}

func (r *Rain) Step(_ int, arena *engine.Arena) {
	area := r.rt.PlayArea()
	fresh := make([]*bullet, 0, r.PerTick)
	for i := 0; i < r.PerTick; i++ {
		x := area.X + r.rng.Float64()*area.W
		speed := 1.5 + r.rng.Float64()*2.5
		drift := (r.rng.Float64() - 0.5) * 0.6

		var shape geom.Shape
		if r.rng.Intn(3) == 0 {
			shape = circleAt(geom.V(x, area.Y+4), 3)
		} else {
			shape = geom.NewRect(x-1.5, area.Y+1, 3, 10)
		}
		fresh = append(fresh, newBullet(shape, geom.V(drift, speed), nil))
	}
	advance(arena, r.rt, fresh...)
}

func circleAt(p geom.Vec, r float64) geom.Circle {
	return geom.Circle{Center: p, Radius: r}
}
