package attachment

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// Attachment describes an image referenced by a question.
type Attachment struct {
	Path   string
	Format string
	Width  int
	Height int
}

// String returns a short description for display.
func (a Attachment) String() string {
	return fmt.Sprintf("%s (%s, %dx%d)", filepath.Base(a.Path), a.Format, a.Width, a.Height)
}

// LoadError reports an attachment that could not be read. It never affects grading.
type LoadError struct {
	Path string
	Err  error
}

// Error returns a readable message for the load failure.
func (err *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", err.Path, err.Err)
}

// Unwrap returns the underlying cause.
func (err *LoadError) Unwrap() error {
	return err.Err
}

// ErrNotRegularFile indicates the path points at a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// Resolve expands a leading ~ and makes relative paths absolute against baseDir,
// or the working directory when baseDir is empty.
func Resolve(path, baseDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Abs(path)
}

// Load probes the image at path and returns its format and dimensions.
func Load(path, baseDir string) (Attachment, error) {
	resolved, err := Resolve(path, baseDir)
	if err != nil {
		return Attachment{}, &LoadError{Path: path, Err: err}
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return Attachment{}, &LoadError{Path: resolved, Err: err}
	}
	if !info.Mode().IsRegular() {
		return Attachment{}, &LoadError{Path: resolved, Err: ErrNotRegularFile}
	}
	file, err := os.Open(resolved)
	if err != nil {
		return Attachment{}, &LoadError{Path: resolved, Err: err}
	}
	defer file.Close()
	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return Attachment{}, &LoadError{Path: resolved, Err: err}
	}
	return Attachment{Path: resolved, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
