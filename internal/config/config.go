package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogFile    = "bombclearer.log"
	defaultLogMaxSize = 10 // megabytes
)

type App struct {
	Development bool
	ClearScreen bool
	Log         Log
}

type Log struct {
	File    string
	Level   logrus.Level
	MaxSize int
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func clearScreen() bool {
	noClear, ok := os.LookupEnv("BOMBCLEARER_NO_CLEAR")
	return !ok || noClear == "0"
}

func NewLog(development bool) (*Log, error) {
	cfg := &Log{
		File:    defaultLogFile,
		Level:   logrus.InfoLevel,
		MaxSize: defaultLogMaxSize,
	}
	if development {
		cfg.Level = logrus.DebugLevel
	}

	if file, ok := os.LookupEnv("BOMBCLEARER_LOG_FILE"); ok {
		cfg.File = file
	}

	if levelStr, ok := os.LookupEnv("BOMBCLEARER_LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BOMBCLEARER_LOG_LEVEL: %w", err)
		}
		cfg.Level = level
	}

	if sizeStr, ok := os.LookupEnv("BOMBCLEARER_LOG_MAX_SIZE"); ok {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, fmt.Errorf("unable to convert BOMBCLEARER_LOG_MAX_SIZE to int: %w", err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("BOMBCLEARER_LOG_MAX_SIZE must be positive, got %d", size)
		}
		cfg.MaxSize = size
	}

	return cfg, nil
}

func New() (*App, error) {
	development := Development()

	log, err := NewLog(development)
	if err != nil {
		return nil, fmt.Errorf("unable to load log config: %w", err)
	}

	cfg := &App{
		Development: development,
		ClearScreen: clearScreen(),
		Log:         *log,
	}

	return cfg, nil
}

func (c App) Fields() logrus.Fields {
	return logrus.Fields{
		"development":  c.Development,
		"clear_screen": c.ClearScreen,
		"log_file":     c.Log.File,
		"log_level":    c.Log.Level.String(),
		"log_max_size": c.Log.MaxSize,
	}
}
