package attachment

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadPNG verifies dimensions and format are reported for a valid image.
func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close png: %v", err)
	}

	att, err := Load("tiny.png", dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if att.Format != "png" || att.Width != 3 || att.Height != 2 {
		t.Fatalf("unexpected attachment: %+v", att)
	}
	if att.Path != path {
		t.Fatalf("expected resolved path %q, got %q", path, att.Path)
	}
}

// TestLoadFailures verifies missing and invalid files return LoadError.
func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	cases := []struct {
		name string
		path string
		want error
	}{
		{name: "missing", path: filepath.Join(dir, "missing.png"), want: os.ErrNotExist},
		{name: "directory", path: dir, want: ErrNotRegularFile},
		{name: "garbage", path: garbage, want: image.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path, "")
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected load error, got %v", err)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
