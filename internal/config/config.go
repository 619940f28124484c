// Package config loads the client's configuration, layering CLI flags
// over an optional YAML file over built-in defaults (§4.8).
package config

// Config is the record the core components consume; field names
// mirror spec.md §6.3 plus the ambient logging fields a runnable CLI
// needs.
type Config struct {
	Server string `yaml:"server"`
	Port   uint16 `yaml:"port"`

	ClientName string `yaml:"client_name"`

	ScreenWidth  uint16 `yaml:"screen_width"`
	ScreenHeight uint16 `yaml:"screen_height"`

	AbsMouseMove       bool   `yaml:"abs_mouse_move"`
	MouseMoveThreshold uint32 `yaml:"mouse_move_threshold"`
	MousePosSyncFreq   uint32 `yaml:"mouse_pos_sync_freq"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the built-in defaults, the bottom of the
// cli > file > default precedence chain. Port/ClientName/
// MouseMoveThreshold/MousePosSyncFreq match the worked examples in
// spec.md §8.
func Default() Config {
	return Config{
		Port:               24800,
		ClientName:         "vizsla",
		ScreenWidth:        1920,
		ScreenHeight:       1080,
		AbsMouseMove:       false,
		MouseMoveThreshold: 16,
		MousePosSyncFreq:   20,
		LogLevel:           "info",
	}
}
