// riffline is a minimal interactive line editor.
//
// Run with: go run ./cmd/riffline
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kungfusheep/riffline"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", riffline.ConfigPath(), "path to riffline.toml")
	prompt := flag.String("prompt", "", "prompt string (overrides config)")
	logPath := flag.String("log", "", "write diagnostics to this file instead of stderr")
	flag.Parse()

	logger, logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := riffline.LoadConfigFrom(*configPath)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}

	opts := append(cfg.Options(), riffline.WithLogger(logger))
	session := riffline.NewSession(riffline.NewTTY(os.Stdin, os.Stdout), opts...)

	if err := session.Run(); err != nil && !errors.Is(err, io.EOF) {
		logger.Print(err)
		return 1
	}
	return 0
}

// setupLogging returns a stderr logger, or one appending to path when set.
func setupLogging(path string) (*log.Logger, *os.File, error) {
	if path == "" {
		return log.New(os.Stderr, "riffline: ", 0), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("riffline: open log: %w", err)
	}
	return log.New(f, "riffline: ", log.LstdFlags), f, nil
}
