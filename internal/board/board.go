// Package board implements the minesweeper board: mine placement, adjacency
// counts, flagging, revealing with flood fill, and win/loss detection.
//
// A Board is not safe for concurrent use.
package board

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const MaxDimension = 99

type State uint8

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

type Params struct {
	Width, Height int
	Density       float64
}

// MineCount is floor(width*height*density).
func (p Params) MineCount() int {
	return int(math.Floor(float64(p.Width*p.Height) * p.Density))
}

func (p Params) Validate() error {
	if err := validateDimensions(p.Width, p.Height); err != nil {
		return err
	}
	if !(p.Density >= 0 && p.Density < 1) {
		return fmt.Errorf("%w: %v is outside [0, 1)", ErrInvalidDensity, p.Density)
	}
	return nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || width > MaxDimension {
		return fmt.Errorf("%w: width %d must be in [1, %d]",
			ErrInvalidDimension, width, MaxDimension)
	}
	if height <= 0 || height > MaxDimension {
		return fmt.Errorf("%w: height %d must be in [1, %d]",
			ErrInvalidDimension, height, MaxDimension)
	}
	return nil
}

type Board struct {
	width, height int
	mineCount     int
	covered       int
	state         State
	tiles         []Tile // row-major, y*width+x
}

// New places floor(width*height*density) mines uniformly at random.
func New(p Params, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	mines := placeMines(p.Width*p.Height, p.MineCount(), r)
	b := build(p.Width, p.Height, mines)
	Log.WithFields(logrus.Fields{
		"width":   b.width,
		"height":  b.height,
		"mines":   b.mineCount,
		"density": p.Density,
	}).Debug("new board")
	return b, nil
}

// FromLayout builds a board with mines exactly where mines[y*width+x] is set.
func FromLayout(width, height int, mines []bool) (*Board, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if len(mines) != width*height {
		return nil, fmt.Errorf("%w: have %d cells, want %d",
			ErrInvalidLayout, len(mines), width*height)
	}
	n := 0
	for _, m := range mines {
		if m {
			n++
		}
	}
	if n == len(mines) {
		return nil, fmt.Errorf("%w: no safe tiles", ErrInvalidLayout)
	}
	return build(width, height, mines), nil
}

func build(width, height int, mines []bool) *Board {
	b := &Board{
		width:   width,
		height:  height,
		covered: width * height,
		tiles:   make([]Tile, width*height),
	}
	for y := range height {
		for x := range width {
			i := y*width + x
			b.tiles[i] = Tile{X: x, Y: y, Mine: mines[i], Covered: true}
			if mines[i] {
				b.mineCount++
			}
		}
	}
	for i := range b.tiles {
		t := &b.tiles[i]
		t.neighbors = make([]int, 0, 8)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := t.X+dx, t.Y+dy
				if xx < 0 || xx >= width || yy < 0 || yy >= height {
					continue
				}
				j := yy*width + xx
				t.neighbors = append(t.neighbors, j)
				if mines[j] {
					t.Adjacent++
				}
			}
		}
	}
	return b
}

func (b *Board) Width() int        { return b.width }
func (b *Board) Height() int       { return b.height }
func (b *Board) MineCount() int    { return b.mineCount }
func (b *Board) CoveredCount() int { return b.covered }
func (b *Board) State() State      { return b.state }

func (b *Board) Over() bool {
	return b.state != InProgress
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// Tile returns a copy of the tile at x, y.
func (b *Board) Tile(x, y int) (Tile, error) {
	if !b.InBounds(x, y) {
		return Tile{}, b.outOfBounds(x, y)
	}
	return b.tiles[y*b.width+x], nil
}

// View returns the player's projection of the tile at x, y. It panics if
// x, y is out of bounds.
func (b *Board) View(x, y int) TileView {
	return b.tiles[y*b.width+x].view()
}

func (b *Board) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: x must be < %d, y must be < %d, got %d,%d",
		ErrOutOfBounds, b.width, b.height, x, y)
}
