package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstPlayerHuman = "human"
	FirstPlayerBot   = "bot"
)

var (
	ErrUnknownFirstPlayer = errors.New("unknown first player")
	ErrUnknownLogLevel    = errors.New("unknown log level")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Game     Game    `yaml:"game"`
	Console  Console `yaml:"console"`
}

type Game struct {
	FirstPlayer string `yaml:"first-player" env:"GAME_FIRST_PLAYER" env-default:"human"`
}

type Console struct {
	// NoColor follows the NO_COLOR convention: any non-empty value turns colours off.
	NoColor string `yaml:"no-color" env:"NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	switch that.Game.FirstPlayer {
	case FirstPlayerHuman, FirstPlayerBot:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFirstPlayer, that.Game.FirstPlayer)
	}
}

// SlogLevel - parses log-level the way slog does, so "debug" and "DEBUG" both work.
func (that *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	return level, nil
}

func (that *Console) ColorEnabled() bool {
	return that.NoColor == ""
}

func (that *Game) BotStarts() bool {
	return that.FirstPlayer == FirstPlayerBot
}
