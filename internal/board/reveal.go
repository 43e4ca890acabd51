package board

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Flag toggles the flag on a covered tile and reports the new flag state.
func (b *Board) Flag(x, y int) (bool, error) {
	if b.Over() {
		return false, ErrGameOver
	}
	if !b.InBounds(x, y) {
		return false, b.outOfBounds(x, y)
	}
	t := &b.tiles[y*b.width+x]
	if !t.Covered {
		return false, fmt.Errorf("%w: %d,%d", ErrTileUncovered, x, y)
	}
	t.Flagged = !t.Flagged
	return t.Flagged, nil
}

type RevealResult struct {
	// NeedsConfirmation is set when the target is flagged and no override
	// was given. Nothing was changed; call Reveal again with override to
	// proceed.
	NeedsConfirmation bool
	// Opened counts tiles uncovered by this call, cascade included.
	Opened int
}

// Reveal uncovers the tile at x, y. Uncovering a safe tile with no mined
// neighbours also uncovers its connected region of safe, unflagged tiles.
func (b *Board) Reveal(x, y int, override bool) (RevealResult, error) {
	if b.Over() {
		return RevealResult{}, ErrGameOver
	}
	if !b.InBounds(x, y) {
		return RevealResult{}, b.outOfBounds(x, y)
	}
	i := y*b.width + x
	t := &b.tiles[i]
	if !t.Covered {
		return RevealResult{}, fmt.Errorf("%w: %d,%d", ErrAlreadyUncovered, x, y)
	}
	if t.Flagged && !override {
		return RevealResult{NeedsConfirmation: true}, nil
	}

	b.uncover(i)

	if t.Mine {
		b.explode(x, y)
		return RevealResult{Opened: 1}, nil
	}

	opened := 1 + b.cascade(i)

	if b.covered == b.mineCount {
		b.state = Won
		Log.WithFields(logrus.Fields{
			"x": x, "y": y,
		}).Debug("board cleared")
	}

	return RevealResult{Opened: opened}, nil
}

func (b *Board) uncover(i int) {
	b.tiles[i].Covered = false
	b.tiles[i].Flagged = false
	b.covered--
}

// cascade uncovers everything reachable from the already uncovered tile at
// start through zero-adjacency tiles. Mines, flagged and uncovered tiles are
// skipped. Returns the number of tiles it uncovered.
func (b *Board) cascade(start int) (opened int) {
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.tiles[i].Adjacent != 0 {
			continue
		}
		for _, j := range b.tiles[i].neighbors {
			n := &b.tiles[j]
			if n.Mine || n.Flagged || !n.Covered {
				continue
			}
			b.uncover(j)
			opened++
			stack = append(stack, j)
		}
	}
	return opened
}

// explode ends the game and uncovers every mine.
func (b *Board) explode(x, y int) {
	b.state = Lost
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.Mine && t.Covered {
			b.uncover(i)
		}
	}
	Log.WithFields(logrus.Fields{
		"x": x, "y": y,
	}).Debug("mine revealed")
}
