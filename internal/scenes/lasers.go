package scenes

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/registry"
)

func init() {
	registry.Register("lasers", func() registry.Scene { return &Lasers{} })
}

// Lasers sweeps long rotating beams around the boss and drops concave star
// bullets between them, so every frame goes through polygon decomposition.
type Lasers struct {
	rt   core.RuntimeConfig
	boss *core.Body

	Beams     int
	Length    float64
	Sweep     float64 // beam rotation per tick, radians
	BeamLife  int     // ticks before the beams are fired again
	StarEvery int
}

func (l *Lasers) ID() string    { return "lasers" }
func (l *Lasers) Title() string { return "Sweeping lasers" }

func (l *Lasers) Reset(cfg core.RuntimeConfig, arena *engine.Arena) {
	l.rt = cfg
	l.boss = boss(cfg)
	l.Beams, l.Length, l.Sweep, l.BeamLife, l.StarEvery = 3, 320, 0.01, 360, 20
	arena.SpawnEntity(l.boss)
}

func (l *Lasers) Step(tick int, arena *engine.Arena) {
	var fresh []*bullet
	center := l.boss.Position()

	if tick%l.BeamLife == 0 {
		for i := 0; i < l.Beams; i++ {
			angle := math.Pi/2 + 2*math.Pi*float64(i)/float64(l.Beams)
			mid := center.Add(polar(30+l.Length/2, angle))
			beam := geom.RotatedRect(mid, l.Length, 8, angle)
			b := newBullet(beam, geom.Vec{}, l.boss)
			b.spin, b.pivot, b.orbit, b.pierce = l.Sweep, center, true, true
			b.ttl = l.BeamLife
			fresh = append(fresh, b)
		}
	}

	if tick%l.StarEvery == 0 {
		k := tick / l.StarEvery
		angle := math.Pi/2 + float64(k%5-2)*0.35
		star := geom.Star(center.Add(polar(40, angle)), 9, 4, 5, float64(k)*0.3)
		b := newBullet(star, polar(1.6, angle), l.boss)
		b.spin = -0.05
		fresh = append(fresh, b)
	}

	advance(arena, l.rt, fresh...)
}
