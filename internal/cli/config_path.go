package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizzer/internal/config"
)

// loadConfig resolves an explicit config path or searches from the CWD.
// A missing config yields defaults and an empty path.
func loadConfig(configPath string) (config.Config, string, error) {
	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		return config.Resolve("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve config path: %w", err)
	}
	return config.Resolve(abs)
}
