// Package board implements the pure geometry of the 5x5 play grid:
// cell addressing, Manhattan distance, orthogonal alignment and the
// enumeration of unit-step movement paths. It knows nothing about
// units or rules; blocked-cell decisions belong to the caller.
package board

// Position addresses a single cell as (column, row).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDistance returns the sum of the absolute axis deltas to other.
func (p Position) ManhattanDistance(other Position) int {
	return abs(other.X-p.X) + abs(other.Y-p.Y)
}

// OrthogonallyAligned reports whether both positions share a row or a
// column without being the same cell.
func (p Position) OrthogonallyAligned(other Position) bool {
	dx := abs(other.X - p.X)
	dy := abs(other.Y - p.Y)
	return (dx == 0 && dy > 0) || (dx > 0 && dy == 0)
}

// AdjacentTo reports whether other is exactly one orthogonal step away.
// Diagonal cells are never adjacent.
func (p Position) AdjacentTo(other Position) bool {
	return p.ManhattanDistance(other) == 1
}

// Board holds the fixed grid dimensions. Occupancy and obstacles are
// derived from match state, not stored here.
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultWidth and DefaultHeight are the standard match grid dimensions.
const (
	DefaultWidth  = 5
	DefaultHeight = 5
)

// New returns a board with the given dimensions.
func New(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Default returns the standard 5x5 board.
func Default() Board {
	return New(DefaultWidth, DefaultHeight)
}

// InBounds reports whether pos lies on the board.
func (b Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Width && pos.Y >= 0 && pos.Y < b.Height
}

// StepPaths enumerates the candidate orthogonal unit-step paths from one
// position to another, decomposing the move into single-cell steps along
// the axes. Each returned path lists the intermediate cells strictly
// between from and to, in walking order; the destination itself is not
// included. Straight moves yield one path, L-shaped moves yield the two
// corner variants (x-then-y and y-then-x). A zero-length move yields a
// single empty path.
func StepPaths(from, to Position) [][]Position {
	if from == to {
		return [][]Position{{}}
	}
	if from.OrthogonallyAligned(to) {
		return [][]Position{walkStraight(from, to)}
	}

	cornerA := Position{X: to.X, Y: from.Y} // x first
	cornerB := Position{X: from.X, Y: to.Y} // y first

	pathA := append(walkStraight(from, cornerA), cornerA)
	pathA = append(pathA, walkStraight(cornerA, to)...)
	pathB := append(walkStraight(from, cornerB), cornerB)
	pathB = append(pathB, walkStraight(cornerB, to)...)

	return [][]Position{pathA, pathB}
}

// walkStraight returns the cells strictly between two aligned positions.
func walkStraight(from, to Position) []Position {
	cells := make([]Position, 0, from.ManhattanDistance(to))
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	cur := from
	for {
		cur = Position{X: cur.X + dx, Y: cur.Y + dy}
		if cur == to {
			return cells
		}
		cells = append(cells, cur)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
