package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeTUI  = "tui"
	ModeText = "text"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogPath  string `yaml:"log-path" env:"TICTACTOE_LOG_PATH" env-default:"./tictactoe.log"`
	Mode     string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"tui"`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Theme    Theme  `yaml:"theme"`
}

// Theme holds hex colors for the full screen board. Empty values keep the built-in colors.
type Theme struct {
	CellBg string `yaml:"cell-bg" env:"TICTACTOE_THEME_CELL_BG"`
	CellFg string `yaml:"cell-fg" env:"TICTACTOE_THEME_CELL_FG"`
	MarkX  string `yaml:"mark-x" env:"TICTACTOE_THEME_MARK_X"`
	MarkO  string `yaml:"mark-o" env:"TICTACTOE_THEME_MARK_O"`
	WinBg  string `yaml:"win-bg" env:"TICTACTOE_THEME_WIN_BG"`
	Status string `yaml:"status" env:"TICTACTOE_THEME_STATUS"`
}

// MustLoad - load all configurations from the yml file at path, or from the
// environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return config, nil
}
