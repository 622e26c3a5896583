package config

// Shuffle policies.
const (
	ShuffleAsk    = "ask"
	ShuffleAlways = "always"
	ShuffleNever  = "never"
)

// UI modes.
const (
	UIAuto  = "auto"
	UIForm  = "form"
	UIPlain = "plain"
)

// Config holds user preferences read from .quizzer.yml.
type Config struct {
	Version  int    `yaml:"version"`
	Shuffle  string `yaml:"shuffle"`
	UI       string `yaml:"ui"`
	NoColor  bool   `yaml:"no_color"`
	LogLevel string `yaml:"log_level"`
	Seed     int64  `yaml:"seed"`
	ImageDir string `yaml:"image_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
