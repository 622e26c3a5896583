package config

import "strings"

// Normalize lowercases enum fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.Shuffle = strings.ToLower(strings.TrimSpace(cfg.Shuffle))
	if cfg.Shuffle == "" {
		cfg.Shuffle = ShuffleAsk
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	cfg.ImageDir = strings.TrimSpace(cfg.ImageDir)
}
