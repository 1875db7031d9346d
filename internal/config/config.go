package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/shopdesk/internal/models"
)

const configFile = ".shopdesk/config.json"

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetLastScreen records the screen the console was on when it exited
func SetLastScreen(baseDir string, screen string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.LastScreen = screen
	return Save(baseDir, cfg)
}

// GetLastScreen returns the screen the console was last on
func GetLastScreen(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.LastScreen, nil
}

// SetIncludeHidden persists the hidden-products toggle
func SetIncludeHidden(baseDir string, include bool) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.IncludeHidden = include
	return Save(baseDir, cfg)
}

// GetIncludeHidden returns the hidden-products toggle
func GetIncludeHidden(baseDir string) (bool, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return false, err
	}
	return cfg.IncludeHidden, nil
}
