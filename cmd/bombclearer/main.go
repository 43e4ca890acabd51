package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/bombclearer/internal/board"
	"github.com/vancomm/bombclearer/internal/config"
)

const Version = "1.0.0"

var (
	log = logrus.New()

	difficultyName string
	boardParams    string
	seed           uint64
	showVersion    bool
)

func init() {
	flag.StringVar(&difficultyName, "difficulty", "", "skip the menu: easy, medium or hard")
	flag.StringVar(&boardParams, "board", "", `custom board, e.g. "width=20&height=12&density=0.15"`)
	flag.Uint64Var(&seed, "seed", 0, "seed for mine placement (0 picks a random one)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// setupLogging keeps log output off the game screen: entries go to a
// rotating file, and to stderr as well in development mode.
func setupLogging(cfg *config.App) error {
	log.SetLevel(cfg.Log.Level)
	if cfg.Development {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetOutput(io.Discard)
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      cfg.Log.Level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
	}
	log.AddHook(hook)

	board.Log = log
	return nil
}

func presetParams() (*board.Params, error) {
	switch {
	case boardParams != "" && difficultyName != "":
		return nil, fmt.Errorf("-board and -difficulty are mutually exclusive")
	case boardParams != "":
		p, err := decodeBoardParams(boardParams)
		if err != nil {
			return nil, err
		}
		return &p, nil
	case difficultyName != "":
		d, err := board.ParseDifficulty(difficultyName)
		if err != nil {
			return nil, err
		}
		return &d.Params, nil
	}
	return nil, nil
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("bombclearer v%s\n", Version)
		return
	}

	// log still writes to stderr until setupLogging
	params, err := presetParams()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatal(err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	app := &application{
		log:    log,
		out:    os.Stdout,
		lines:  readLines(os.Stdin),
		rnd:    createRand(seed),
		clear:  cfg.ClearScreen,
		params: params,
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return app.run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("exit reason: ", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
