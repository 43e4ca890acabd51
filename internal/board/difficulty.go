package board

import (
	"fmt"
	"strings"
)

type Difficulty struct {
	Name string
	Params
}

var (
	Easy   = Difficulty{"easy", Params{Width: 9, Height: 9, Density: 0.12346}}
	Medium = Difficulty{"medium", Params{Width: 16, Height: 16, Density: 0.15625}}
	Hard   = Difficulty{"hard", Params{Width: 30, Height: 16, Density: 0.20625}}

	// Presets in menu order.
	Presets = []Difficulty{Easy, Medium, Hard}
)

func (d Difficulty) String() string {
	return fmt.Sprintf("%s - %dx%d / %d bombs",
		strings.ToUpper(d.Name[:1])+d.Name[1:], d.Width, d.Height, d.MineCount())
}

var ErrUnknownDifficulty error

func init() {
	names := make([]string, 0, len(Presets))
	for _, d := range Presets {
		names = append(names, "'"+d.Name+"'")
	}
	ErrUnknownDifficulty = fmt.Errorf(
		"difficulty must be one of %s", strings.Join(names, ", "),
	)
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Presets {
		if strings.EqualFold(s, d.Name) {
			return d, nil
		}
	}
	return Difficulty{}, ErrUnknownDifficulty
}
