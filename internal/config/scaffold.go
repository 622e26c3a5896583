package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1
# ask | always | never
shuffle: ask
# auto | form | plain
ui: auto
no_color: false
# debug | info | warn | error
log_level: warn
# 0 picks a time-based seed
seed: 0
# base directory for relative image paths; defaults to the question file's directory
image_dir: ""
`

// Scaffold writes a default config file, refusing to overwrite an existing one.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
