package board

import "strconv"

type Tile struct {
	X, Y     int
	Mine     bool
	Covered  bool
	Flagged  bool
	Adjacent int // mined neighbours, unused for mines

	neighbors []int
}

// TileView is what a player is allowed to know about a tile.
type TileView int8

const (
	Hidden  TileView = -2
	Flagged TileView = -1
	Mine    TileView = 9
	// 0-8 for an uncovered safe tile with that many mined neighbours
)

func (v TileView) String() string {
	switch {
	case v == Hidden:
		return "?"
	case v == Flagged:
		return "F"
	case v == Mine:
		return "*"
	case v == 0:
		return " "
	case 1 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

func (t Tile) view() TileView {
	switch {
	case t.Covered && t.Flagged:
		return Flagged
	case t.Covered:
		return Hidden
	case t.Mine:
		return Mine
	default:
		return TileView(t.Adjacent)
	}
}
