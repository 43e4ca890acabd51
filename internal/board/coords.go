package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ExtractCoordinates parses "x,y", e.g. "10,4", and checks it against the
// board's dimensions.
func (b *Board) ExtractCoordinates(text string) (x, y int, err error) {
	if n := strings.Count(text, ","); n != 1 {
		return 0, 0, fmt.Errorf(
			"%w: want exactly one ',' between coordinates, got %q (%d commas)",
			ErrMalformedInput, text, n,
		)
	}
	xs, ys, _ := strings.Cut(text, ",")
	if !isDigits(xs) || !isDigits(ys) {
		return 0, 0, fmt.Errorf(
			"%w: coordinates must only include digits and ',', got %q",
			ErrMalformedInput, text,
		)
	}

	x, xErr := strconv.Atoi(xs)
	y, yErr := strconv.Atoi(ys)
	if err := errors.Join(xErr, yErr); err != nil {
		// only digits got this far, so the number is just too big
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrOutOfBounds, text, err)
	}
	if !b.InBounds(x, y) {
		return 0, 0, b.outOfBounds(x, y)
	}
	return x, y, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
