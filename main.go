package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logOut, closeLog := initLogOutput(conf)
	defer closeLog()

	logger := initLogger(conf, logOut)

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// logs go to stderr unless a file is configured, stdout belongs to the board.
func initLogOutput(conf *config.Config) (io.Writer, func()) {
	if conf.LogFile == "" {
		return os.Stderr, func() {}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file, func() {
		_ = file.Close()
	}
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	// log-level is already validated by config.Load
	level, _ := conf.SlogLevel()

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
