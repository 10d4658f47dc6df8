package board

// Terrain is a property of a square's coordinates alone; it never changes
// as pieces move across the board.
type Terrain uint8

const (
	Plain Terrain = iota
	Escape
	Camp
	Castle
)

func (t Terrain) String() string {
	switch t {
	case Plain:
		return "plain"
	case Escape:
		return "escape"
	case Camp:
		return "camp"
	case Castle:
		return "castle"
	default:
		return "?"
	}
}

// CastleSquare is the single castle cell, (4,4).
var CastleSquare = NewSquare(4, 4)

// campGroup is one of the four camp clusters; Center is the cell a black
// soldier must originate from to re-enter any other cell of the same
// group (spec: camps are legal destinations only for a black soldier
// whose origin is a camp center, and only within the same group).
type campGroup struct {
	Center Square
	Cells  [4]Square
}

// campGroups enumerates the 16 camp cells in their four symmetric groups:
// top, left, right, bottom, each a plus-shape of three edge cells plus one
// cell reaching one step toward the castle.
var campGroups = [4]campGroup{
	{Center: NewSquare(0, 4), Cells: [4]Square{NewSquare(0, 3), NewSquare(0, 4), NewSquare(0, 5), NewSquare(1, 4)}},
	{Center: NewSquare(4, 0), Cells: [4]Square{NewSquare(3, 0), NewSquare(4, 0), NewSquare(5, 0), NewSquare(4, 1)}},
	{Center: NewSquare(4, 8), Cells: [4]Square{NewSquare(3, 8), NewSquare(4, 8), NewSquare(5, 8), NewSquare(4, 7)}},
	{Center: NewSquare(8, 4), Cells: [4]Square{NewSquare(8, 3), NewSquare(8, 4), NewSquare(8, 5), NewSquare(7, 4)}},
}

// TerrainAt classifies a square purely from its coordinates.
func TerrainAt(sq Square) Terrain {
	if sq == CastleSquare {
		return Castle
	}
	if _, ok := campGroupOf(sq); ok {
		return Camp
	}
	if isEscape(sq) {
		return Escape
	}
	return Plain
}

func isEscape(sq Square) bool {
	r, c := sq.Row(), sq.Col()
	onBorderRow := r == 0 || r == Size-1
	onBorderCol := c == 0 || c == Size-1
	isEdgeIndex := func(v int) bool { return v == 1 || v == 2 || v == 6 || v == 7 }
	if onBorderRow && isEdgeIndex(c) {
		return true
	}
	if onBorderCol && isEdgeIndex(r) {
		return true
	}
	return false
}

// campGroupOf returns the camp group containing sq, if any.
func campGroupOf(sq Square) (campGroup, bool) {
	for _, g := range campGroups {
		for _, cell := range g.Cells {
			if cell == sq {
				return g, true
			}
		}
	}
	return campGroup{}, false
}

// IsCampReentryAllowed reports whether a black soldier originating from
// `from` may enter camp cell `to`: only from that camp group's center,
// and only into a cell of the same group.
func IsCampReentryAllowed(from, to Square) bool {
	g, ok := campGroupOf(to)
	return ok && g.Center == from
}
