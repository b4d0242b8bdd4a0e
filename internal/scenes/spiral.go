package scenes

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/registry"
)

func init() {
	registry.Register("spiral", func() registry.Scene { return &Spiral{} })
}

// Spiral sprays spinning triangles along rotating arms.
type Spiral struct {
	rt   core.RuntimeConfig
	boss *core.Body

	Arms     int
	Interval int
	Turn     float64 // emitter rotation per shot, radians
	Speed    float64
}

func (s *Spiral) ID() string    { return "spiral" }
func (s *Spiral) Title() string { return "Triangle spiral" }

func (s *Spiral) Reset(cfg core.RuntimeConfig, arena *engine.Arena) {
	s.rt = cfg
	s.boss = boss(cfg)
	s.Arms, s.Interval, s.Turn, s.Speed = 3, 3, 0.21, 2
	arena.SpawnEntity(s.boss)
}

func (s *Spiral) Step(tick int, arena *engine.Arena) {
	var fresh []*bullet
	if tick%s.Interval == 0 {
		base := float64(tick/s.Interval) * s.Turn
		center := s.boss.Position()
		for i := 0; i < s.Arms; i++ {
			angle := base + 2*math.Pi*float64(i)/float64(s.Arms)
			tri := geom.RegularPolygon(center.Add(polar(30, angle)), 6, 3, angle)
			b := newBullet(tri, polar(s.Speed, angle), s.boss)
			b.spin = 0.08
			fresh = append(fresh, b)
		}
	}
	advance(arena, s.rt, fresh...)
}
