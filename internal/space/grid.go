// Package space partitions the play area into a uniform grid of cells so the
// player only has to be tested against bullets that share a cell with it.
//
// The grid is rebuilt from scratch once per logic tick. It is not safe for
// concurrent use; the logic goroutine owns it.
package space

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/geom"
)

// ErrInvalidChunks is returned for non-positive chunk counts or play areas.
var ErrInvalidChunks = errors.New("space: chunk amount must be positive")

// CellIndex addresses one cell, X along the width and Y along the height.
type CellIndex struct {
	X, Y int
}

// Grid is a chunksX by chunksY partition of the play area. Each cell holds
// the ids of the bullets whose bounds touch it.
type Grid struct {
	chunksX, chunksY int
	area             geom.Rect
	cellW, cellH     float64

	cells [][]map[uuid.UUID]struct{} // [x][y]
	where map[uuid.UUID][]CellIndex

	player      []CellIndex
	playerSet   map[CellIndex]struct{}
	playerCount int

	logger *log.Logger
}

// NewGrid creates an empty grid over area.
func NewGrid(chunksX, chunksY int, area geom.Rect) (*Grid, error) {
	if err := checkChunks(chunksX, chunksY); err != nil {
		return nil, err
	}
	if err := checkArea(area); err != nil {
		return nil, err
	}

	g := &Grid{
		chunksX: chunksX,
		chunksY: chunksY,
		area:    area,
		logger:  log.Default(),
	}
	g.divide()
	return g, nil
}

// SetLogger replaces the logger used for debug output. Nil restores the default.
func (g *Grid) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	g.logger = l
}

func checkChunks(x, y int) error {
	if x <= 0 || y <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidChunks, x, y)
	}
	return nil
}

func checkArea(area geom.Rect) error {
	if area.W <= 0 || area.H <= 0 {
		return fmt.Errorf("%w: play area %vx%v", ErrInvalidChunks, area.W, area.H)
	}
	return nil
}

// divide recomputes cell sizes and allocates empty cells.
func (g *Grid) divide() {
	g.cellW = math.Max(1, math.Floor(g.area.W/float64(g.chunksX)))
	g.cellH = math.Max(1, math.Floor(g.area.H/float64(g.chunksY)))

	g.cells = make([][]map[uuid.UUID]struct{}, g.chunksX)
	for x := range g.cells {
		g.cells[x] = make([]map[uuid.UUID]struct{}, g.chunksY)
		for y := range g.cells[x] {
			g.cells[x][y] = make(map[uuid.UUID]struct{})
		}
	}
	g.where = make(map[uuid.UUID][]CellIndex)
	g.player = nil
	g.playerSet = make(map[CellIndex]struct{})
	g.playerCount = 0
}

// Chunks returns the number of cells along each axis.
func (g *Grid) Chunks() (x, y int) {
	return g.chunksX, g.chunksY
}

// CellSize returns the width and height of one cell.
func (g *Grid) CellSize() (w, h float64) {
	return g.cellW, g.cellH
}

// Area returns the play area covered by the grid.
func (g *Grid) Area() geom.Rect {
	return g.area
}

// Resize changes the number of chunks. The grid is emptied and must be rebuilt.
func (g *Grid) Resize(chunksX, chunksY int) error {
	if err := checkChunks(chunksX, chunksY); err != nil {
		return err
	}
	g.chunksX, g.chunksY = chunksX, chunksY
	g.divide()
	return nil
}

// Refresh adopts a new play area, for example after the screen size changed.
// The grid is emptied and must be rebuilt.
func (g *Grid) Refresh(area geom.Rect) error {
	if err := checkArea(area); err != nil {
		return err
	}
	g.area = area
	g.divide()
	return nil
}

// CellsFor returns every cell covered by bounds, in x-major order. Indices
// outside the grid are clamped to the border cells, so off-area objects still
// land somewhere.
func (g *Grid) CellsFor(bounds geom.Rect) []CellIndex {
	x0, y0 := g.pointCell(bounds.X, bounds.Y)
	x1, y1 := g.pointCell(bounds.Right(), bounds.Bottom())

	out := make([]CellIndex, 0, (x1-x0+1)*(y1-y0+1))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			out = append(out, CellIndex{X: x, Y: y})
		}
	}
	return out
}

func (g *Grid) pointCell(x, y float64) (int, int) {
	return cellIndex((x-g.area.X)/g.cellW, g.chunksX), cellIndex((y-g.area.Y)/g.cellH, g.chunksY)
}

// cellIndex floors v into [0, n-1]. The clamp happens before the int
// conversion so infinities land on the border cells; NaN maps to 0.
func cellIndex(v float64, n int) int {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(n-1):
		return n - 1
	}
	return int(f)
}

// Clear empties every cell and forgets the player cells.
func (g *Grid) Clear() {
	for x := range g.cells {
		for y := range g.cells[x] {
			clear(g.cells[x][y])
		}
	}
	clear(g.where)
	g.player = g.player[:0]
	clear(g.playerSet)
}

// Insert records c in every cell its bounds touch.
func (g *Grid) Insert(c core.Collidable) {
	shape := c.Shape()
	if shape == nil {
		return
	}
	id := c.ID()
	cells := g.CellsFor(shape.Bounds())
	for _, idx := range cells {
		g.cells[idx.X][idx.Y][id] = struct{}{}
	}
	g.where[id] = append(g.where[id], cells...)
}

// Rebuild clears the grid, inserts every bullet not rejected by skip and
// records the cells of the player. A nil skip keeps all bullets; a nil
// player leaves the player cell list empty.
func (g *Grid) Rebuild(bullets []core.Collidable, player core.Collidable, skip func(core.Collidable) bool) {
	g.Clear()
	for _, b := range bullets {
		if skip != nil && skip(b) {
			continue
		}
		g.Insert(b)
	}

	if player == nil || player.Shape() == nil {
		g.notePlayerCount(0)
		return
	}

	g.player = append(g.player, g.CellsFor(player.Shape().Bounds())...)
	count := 0
	for _, idx := range g.player {
		g.playerSet[idx] = struct{}{}
		count += len(g.cells[idx.X][idx.Y])
	}
	g.notePlayerCount(count)
}

func (g *Grid) notePlayerCount(n int) {
	if n != g.playerCount {
		g.logger.Debug("bullets in player cells", "count", n)
	}
	g.playerCount = n
}

// PlayerCount returns the number of bullet entries in the player cells. A
// bullet spanning two player cells counts twice.
func (g *Grid) PlayerCount() int {
	return g.playerCount
}

// PlayerCells returns a copy of the cells the player occupies.
func (g *Grid) PlayerCells() []CellIndex {
	return slices.Clone(g.player)
}

// IsInPlayerCells reports whether the object with the given id shares at
// least one cell with the player.
func (g *Grid) IsInPlayerCells(id uuid.UUID) bool {
	for _, idx := range g.where[id] {
		if _, ok := g.playerSet[idx]; ok {
			return true
		}
	}
	return false
}

// Cell returns the ids stored in one cell in a stable order. Out-of-range
// indices yield nil.
func (g *Grid) Cell(x, y int) []uuid.UUID {
	if x < 0 || x >= g.chunksX || y < 0 || y >= g.chunksY {
		return nil
	}
	return sortedIDs(g.cells[x][y])
}

// CellsOf returns the cells the object with the given id was recorded in.
func (g *Grid) CellsOf(id uuid.UUID) []CellIndex {
	return slices.Clone(g.where[id])
}

// Occupancy is the content of one non-empty cell.
type Occupancy struct {
	Cell CellIndex
	IDs  []uuid.UUID
}

// Snapshot lists every non-empty cell in x-major order with sorted ids.
func (g *Grid) Snapshot() []Occupancy {
	var out []Occupancy
	for x := range g.cells {
		for y := range g.cells[x] {
			if len(g.cells[x][y]) == 0 {
				continue
			}
			out = append(out, Occupancy{
				Cell: CellIndex{X: x, Y: y},
				IDs:  sortedIDs(g.cells[x][y]),
			})
		}
	}
	return out
}

// String dumps the non-empty cells, one per line.
func (g *Grid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grid %dx%d cell %vx%v\n", g.chunksX, g.chunksY, g.cellW, g.cellH)
	for _, occ := range g.Snapshot() {
		fmt.Fprintf(&sb, "(%d,%d):", occ.Cell.X, occ.Cell.Y)
		for _, id := range occ.IDs {
			sb.WriteByte(' ')
			sb.WriteString(id.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sortedIDs(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
