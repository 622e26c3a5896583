package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigPathSearchesUpward(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if found != configPath {
		t.Fatalf("expected %q, got %q", configPath, found)
	}
}

func TestFindConfigPathNotFound(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindConfigPathRejectsDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := FindConfigPath(root)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(path, []byte("version: 1\nui: form\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, err := Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.UI != UIForm {
		t.Fatalf("expected ui form, got %q", cfg.UI)
	}
}
