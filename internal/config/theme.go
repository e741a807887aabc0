package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme holds terminal presentation settings. None of it affects game state.
type Theme struct {
	CardBackColor   string `toml:"card_back_color"`
	BackgroundColor string `toml:"background_color"`
	MatchedColor    string `toml:"matched_color"`
	ShowSettings    bool   `toml:"show_settings"`
}

// DefaultTheme is a dark board with blue card backs and green matches.
func DefaultTheme() Theme {
	return Theme{
		CardBackColor:   "blue",
		BackgroundColor: "black",
		MatchedColor:    "green",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetThemeFilePath returns the path to the theme file
func GetThemeFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "concentration", "theme.toml")
}

// LoadTheme decodes the theme at path, writing the default theme there first if the
// file does not exist yet. Keys missing from the file keep their defaults.
func LoadTheme(path string) (Theme, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultTheme(path)
	}

	theme := DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, fmt.Errorf("error decoding theme file: %w", err)
	}
	return theme, nil
}

// SaveTheme writes the theme to path as TOML.
func SaveTheme(path string, theme Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating theme directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating theme file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(theme); err != nil {
		return fmt.Errorf("error encoding theme: %w", err)
	}
	return nil
}

func createDefaultTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if err := SaveTheme(path, theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}
