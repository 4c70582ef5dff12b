// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/rng"
)

// side indexes the four walls of a cell.
type side int

const (
	top side = iota
	right
	bottom
	left
)

// offsets gives the (dx, dy) of the neighbour behind each side; the order
// top, right, bottom, left is also the neighbour order of the produced graph.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// opposite maps each side to the matching side of the neighbouring cell.
var opposite = [4]side{bottom, left, top, right}

// cell is carve-time state only; it never leaves this package.
type cell struct {
	x, y    int
	walls   [4]bool
	visited bool
}

// wall names an interior wall by its canonical owner: the cell whose top or
// left side it is.
type wall struct {
	x, y int
	s    side
}

// grid is the transient cell matrix, indexed cells[y][x].
type grid struct {
	width, height int
	cells         [][]cell
}

// Generate builds a width×height maze and returns it as a grid graph.
//
// Steps:
//  1. Every cell starts fully walled and unvisited.
//  2. Depth-first backtracking from (0,0): look at the top of the stack, pick a
//     uniformly random unvisited orthogonal neighbour, knock down the shared
//     wall on both cells, mark it visited and push it; with no such neighbour,
//     pop. The stack empties once every cell has been reached.
//  3. If WallRemoval > 0, clear floor(walls·percent/100) of the remaining
//     interior walls, each picked uniformly from those not yet cleared.
//  4. Convert: each cell becomes node "x,y" whose neighbours are the open sides
//     in top, right, bottom, left order.
//
// A 1×1 maze is a single isolated node. Generation never fails for positive
// dimensions and valid options.
func Generate(width, height int, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Generate(%d, %d): %w", width, height, ErrBadDimension)
	}

	gr := newGrid(width, height)
	gr.carve(o.Source)
	if o.WallRemoval > 0 {
		gr.removeWalls(o.Source, o.WallRemoval)
	}

	return gr.toGraph()
}

func newGrid(width, height int) *grid {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{x: x, y: y, walls: [4]bool{true, true, true, true}}
		}
	}
	return &grid{width: width, height: height, cells: cells}
}

func (gr *grid) inBounds(x, y int) bool {
	return x >= 0 && x < gr.width && y >= 0 && y < gr.height
}

// carve runs the iterative recursive-backtracker from (0,0).
func (gr *grid) carve(src rng.Source) {
	start := &gr.cells[0][0]
	start.visited = true
	stack := []*cell{start}

	var candidates []side
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for s, d := range offsets {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if gr.inBounds(nx, ny) && !gr.cells[ny][nx].visited {
				candidates = append(candidates, side(s))
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		s := candidates[rng.Intn(src, len(candidates))]
		next := gr.open(cur.x, cur.y, s)
		next.visited = true
		stack = append(stack, next)
	}
}

// open clears side s of (x,y) and the facing side of its neighbour, returning
// the neighbour.
func (gr *grid) open(x, y int, s side) *cell {
	d := offsets[s]
	next := &gr.cells[y+d[1]][x+d[0]]
	gr.cells[y][x].walls[s] = false
	next.walls[opposite[s]] = false

	return next
}

// standingWalls lists the interior walls still up, each exactly once: only top
// (y > 0) and left (x > 0) sides are considered, since every interior wall is
// the top or left side of exactly one cell. Order is row-major, top before left.
func (gr *grid) standingWalls() []wall {
	var out []wall
	for y := 0; y < gr.height; y++ {
		for x := 0; x < gr.width; x++ {
			c := &gr.cells[y][x]
			if y > 0 && c.walls[top] {
				out = append(out, wall{x: x, y: y, s: top})
			}
			if x > 0 && c.walls[left] {
				out = append(out, wall{x: x, y: y, s: left})
			}
		}
	}
	return out
}

// removeWalls clears floor(len(walls)·percent/100) random interior walls.
// Each pick is removed from the pool, so no wall is drawn twice.
func (gr *grid) removeWalls(src rng.Source, percent int) {
	pool := gr.standingWalls()
	count := len(pool) * percent / 100
	for i := 0; i < count && len(pool) > 0; i++ {
		k := rng.Intn(src, len(pool))
		w := pool[k]
		gr.open(w.x, w.y, w.s)
		pool = slices.Delete(pool, k, k+1)
	}
}

// toGraph converts the cell matrix to a grid graph.
func (gr *grid) toGraph() (*core.Graph, error) {
	g, err := core.NewGrid(gr.width, gr.height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < gr.height; y++ {
		for x := 0; x < gr.width; x++ {
			c := &gr.cells[y][x]
			id := core.GridID(x, y)
			for s, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if c.walls[s] || !gr.inBounds(nx, ny) {
					continue
				}
				if err := g.AddArc(id, core.GridID(nx, ny)); err != nil {
					return nil, fmt.Errorf("maze: %w", err)
				}
			}
		}
	}

	return g, nil
}
