package main

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/bombclearer/internal/board"
)

type boardParamsDTO struct {
	Width   int     `schema:"width,required"`
	Height  int     `schema:"height,required"`
	Density float64 `schema:"density,required"`
}

// decodeBoardParams reads a custom board from "width=W&height=H&density=D".
func decodeBoardParams(s string) (board.Params, error) {
	src, err := url.ParseQuery(s)
	if err != nil {
		return board.Params{}, fmt.Errorf("invalid board parameters %q: %w", s, err)
	}
	var dto boardParamsDTO
	if err := schema.NewDecoder().Decode(&dto, src); err != nil {
		return board.Params{}, fmt.Errorf("invalid board parameters %q: %w", s, err)
	}
	params := board.Params(dto)
	if err := params.Validate(); err != nil {
		return board.Params{}, err
	}
	return params, nil
}
