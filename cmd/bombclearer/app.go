package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/bombclearer/internal/board"
	"github.com/vancomm/bombclearer/internal/render"
)

const clearSequence = "\033[H\033[2J"

var errQuit = errors.New("player quit")

type application struct {
	log   *logrus.Logger
	out   io.Writer
	lines <-chan string
	rnd   *rand.Rand
	clear bool

	// params skips the difficulty menu when set.
	params *board.Params

	// status is shown once under the next frame.
	status string
}

// readLines sends trimmed input lines until r is exhausted.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(r)
		for s.Scan() {
			lines <- strings.TrimSpace(s.Text())
		}
	}()
	return lines
}

func (app *application) printf(format string, args ...any) {
	fmt.Fprintf(app.out, format, args...)
}

func (app *application) prompt(ctx context.Context) (string, error) {
	app.printf("> ")
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-app.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (app *application) header() {
	if app.clear {
		app.printf(clearSequence)
	}
	app.printf("BombClearer v%s\n\n", Version)
}

func (app *application) flushStatus() {
	if app.status != "" {
		app.printf("%s\n\n", app.status)
		app.status = ""
	}
}

// run plays one session. Quitting, end of input and cancellation all end it
// without error.
func (app *application) run(ctx context.Context) error {
	err := app.session(ctx)
	switch {
	case errors.Is(err, errQuit), errors.Is(err, io.EOF):
		app.log.Info("session abandoned")
		return nil
	case errors.Is(err, context.Canceled):
		app.log.Info("session interrupted")
		return nil
	}
	return err
}

func (app *application) session(ctx context.Context) error {
	var params board.Params
	if app.params != nil {
		params = *app.params
	} else {
		var err error
		if params, err = app.chooseDifficulty(ctx); err != nil {
			return err
		}
	}

	b, err := board.New(params, app.rnd)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}

	app.log.WithFields(logrus.Fields{
		"width":  b.Width(),
		"height": b.Height(),
		"mines":  b.MineCount(),
	}).Info("game started")

	return app.play(ctx, b)
}

func (app *application) chooseDifficulty(ctx context.Context) (board.Params, error) {
	for {
		app.header()
		app.flushStatus()
		app.printf("Select difficulty:\n")
		for i, d := range board.Presets {
			app.printf("%d : %s\n", i, d)
		}
		app.printf("q : Quit game\n")

		choice, err := app.prompt(ctx)
		if err != nil {
			return board.Params{}, err
		}
		if strings.EqualFold(choice, "q") {
			return board.Params{}, errQuit
		}
		i, err := strconv.Atoi(choice)
		if err != nil || i < 0 || i >= len(board.Presets) {
			app.status = "Error: Choice invalid."
			continue
		}
		return board.Presets[i].Params, nil
	}
}

func (app *application) frame(b *board.Board) {
	app.header()
	render.Write(app.out, b)
}

func (app *application) play(ctx context.Context, b *board.Board) error {
	for {
		app.frame(b)
		app.flushStatus()
		app.printf("u : Uncover a tile\n")
		app.printf("f : Flag a tile\n")
		app.printf("q : Quit game\n")

		line, err := app.prompt(ctx)
		if err != nil {
			return err
		}
		cmd, err := decodeCommand(line)
		if err != nil {
			app.status = "Error: Choice invalid."
			continue
		}
		if cmd == cmdQuit {
			return errQuit
		}

		app.printf("Specify coordinates to %s 'x,y', e.g '10,4'.\n", cmd)
		text, err := app.prompt(ctx)
		if err != nil {
			return err
		}
		x, y, err := b.ExtractCoordinates(text)
		if err != nil {
			app.status = "Command failed: " + err.Error()
			continue
		}

		switch cmd {
		case cmdFlag:
			_, err = b.Flag(x, y)
		case cmdUncover:
			err = app.reveal(ctx, b, x, y)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			app.status = "Command failed: " + err.Error()
			continue
		}

		app.log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"x":       x,
			"y":       y,
			"covered": b.CoveredCount(),
		}).Debug("move")

		if b.Over() {
			app.gameOver(b, x, y)
			return nil
		}
	}
}

// reveal asks for confirmation before uncovering a flagged tile.
func (app *application) reveal(ctx context.Context, b *board.Board, x, y int) error {
	res, err := b.Reveal(x, y, false)
	if err != nil || !res.NeedsConfirmation {
		return err
	}

	app.printf("Tile is flagged! Are you sure you want to uncover it? (y/n)\n")
	for {
		choice, err := app.prompt(ctx)
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "y":
			_, err = b.Reveal(x, y, true)
			return err
		case "n":
			return nil
		default:
			app.printf("Choice must be 'y' or 'n'.\n")
		}
	}
}

func (app *application) gameOver(b *board.Board, x, y int) {
	app.frame(b)
	switch b.State() {
	case board.Lost:
		app.printf("  X X\n")
		app.printf("  -u-\n\n")
		app.printf("Bomb found at (%d,%d). You lose!\n", x, y)
	case board.Won:
		app.printf("  O O\n")
		app.printf("   U \n\n")
		app.printf("All bombs located. You win!\n")
	}
	app.log.WithFields(logrus.Fields{
		"state": b.State().String(),
		"x":     x,
		"y":     y,
	}).Info("game over")
}
