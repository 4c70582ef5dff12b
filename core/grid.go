package core

import (
	"fmt"
	"strconv"
	"strings"
)

// GridID formats the node ID for cell (x, y) as "x,y".
func GridID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseGridID extracts the integer coordinates from an "x,y" node ID.
// Returns ErrNotGridID if id does not have exactly that shape.
func ParseGridID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("ParseGridID(%q): %w", id, ErrNotGridID)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("ParseGridID(%q): %w", id, ErrNotGridID)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("ParseGridID(%q): %w", id, ErrNotGridID)
	}

	return x, y, nil
}

// InBounds reports whether (x, y) lies inside the grid. Always false for
// general graphs.
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
