package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/pool"
)

// Arena is a World backed by copy-on-write pools. Scenes spawn into it from
// the logic goroutine while a renderer may read the snapshots concurrently.
// Published bodies must not be modified; a moved body is a new value.
type Arena struct {
	bullets  *pool.Pool[core.Collidable]
	entities *pool.Pool[core.Collidable]

	mu     sync.RWMutex
	player core.Collidable
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		bullets:  pool.New[core.Collidable](),
		entities: pool.New[core.Collidable](),
	}
}

// Bullets returns the current bullet snapshot.
func (a *Arena) Bullets() []core.Collidable { return a.bullets.Load() }

// Entities returns the current entity snapshot.
func (a *Arena) Entities() []core.Collidable { return a.entities.Load() }

// Player returns the player or nil.
func (a *Arena) Player() core.Collidable {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.player
}

// SetPlayer replaces the player; nil removes it.
func (a *Arena) SetPlayer(p core.Collidable) {
	a.mu.Lock()
	a.player = p
	a.mu.Unlock()
}

// Spawn adds a bullet.
func (a *Arena) Spawn(b core.Collidable) {
	a.bullets.Add(b)
}

// SpawnEntity adds an entity.
func (a *Arena) SpawnEntity(e core.Collidable) {
	a.entities.Add(e)
}

// SetBullets replaces every bullet at once, used by scenes that recompute
// their whole pattern each tick.
func (a *Arena) SetBullets(bs []core.Collidable) {
	a.bullets.Replace(bs)
}

// Despawn removes the given bullets, for example after they hit something.
func (a *Arena) Despawn(bs ...core.Collidable) int {
	if len(bs) == 0 {
		return 0
	}
	gone := make(map[uuid.UUID]struct{}, len(bs))
	for _, b := range bs {
		gone[b.ID()] = struct{}{}
	}
	return a.bullets.RemoveFunc(func(c core.Collidable) bool {
		_, ok := gone[c.ID()]
		return ok
	})
}

// Sweep drops the bullets for which offScreen returns true and returns how
// many were removed.
func (a *Arena) Sweep(offScreen func(core.Collidable) bool) int {
	return a.bullets.RemoveFunc(offScreen)
}

// Reset removes every bullet, entity and the player.
func (a *Arena) Reset() {
	a.bullets.Clear()
	a.entities.Clear()
	a.SetPlayer(nil)
}
