package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks for a YAML config file when
// the caller doesn't name one explicitly.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vizsla", "config.yaml")
}

// Flags holds the parsed CLI flag values, kept apart from Config so
// Load can tell "flag present" from "flag left at its zero value".
type Flags struct {
	Server             *string
	Port               *uint16
	ClientName         *string
	ScreenWidth         *uint16
	ScreenHeight        *uint16
	AbsMouseMove        *bool
	MouseMoveThreshold  *uint32
	MousePosSyncFreq    *uint32
	LogLevel           *string
	LogFile            *string
	ConfigFile         *string
	set                *pflag.FlagSet
}

// ParseFlags registers and parses the client's CLI flags against
// args (os.Args[1:] in production), mirroring the teacher's
// kissutil.go -h/-p/-s/-v style: short+long flag pairs, pflag.Usage
// overridden for a one-line banner.
func ParseFlags(args []string) (*Flags, error) {
	fs := pflag.NewFlagSet("vizsla", pflag.ContinueOnError)

	f := &Flags{
		Server:             fs.StringP("server", "s", "", "Synergy/Deskflow server hostname or address"),
		Port:               fs.Uint16P("port", "p", 0, "Server TCP port (default 24800)"),
		ClientName:         fs.StringP("name", "n", "", "Client name announced in HelloBack"),
		ScreenWidth:        fs.Uint16("screen-width", 0, "Screen width in pixels, used if the device context can't query it"),
		ScreenHeight:       fs.Uint16("screen-height", 0, "Screen height in pixels, used if the device context can't query it"),
		AbsMouseMove:       fs.BoolP("absolute-mouse", "a", false, "Inject DMMV as absolute moves instead of relative"),
		MouseMoveThreshold: fs.Uint32("mouse-move-threshold", 0, "DMMV throttle interval in ms"),
		MousePosSyncFreq:   fs.Uint32("mouse-pos-sync-freq", 0, "Relative-mode hard-resync period, in moves"),
		LogLevel:           fs.StringP("log-level", "v", "", "Log level: debug, info, warn, error"),
		LogFile:            fs.StringP("log-file", "o", "", "Write logs to this file instead of stderr"),
		ConfigFile:         fs.StringP("config", "f", "", "Path to a YAML config file"),
		set:                fs,
	}

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vizsla -s <server> [options]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// Load builds the effective Config: built-in defaults, overridden by
// an optional YAML file, overridden by any CLI flags the caller
// actually set (§4.8: cli > file > default).
func Load(f *Flags) (Config, error) {
	cfg := Default()

	path := ""
	if f != nil && f.ConfigFile != nil {
		path = *f.ConfigFile
	}
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		if err := applyFile(&cfg, path, explicit); err != nil {
			return Config{}, err
		}
	}

	applyFlags(&cfg, f)
	return cfg, nil
}

// applyFile loads path as YAML into cfg if it exists. A missing file
// at the default path is not an error; an explicitly-named missing
// file (explicit true) is.
func applyFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyFlags(cfg *Config, f *Flags) {
	if f == nil || f.set == nil {
		return
	}
	set := func(name string, apply func()) {
		if f.set.Changed(name) {
			apply()
		}
	}
	set("server", func() { cfg.Server = *f.Server })
	set("port", func() { cfg.Port = *f.Port })
	set("name", func() { cfg.ClientName = *f.ClientName })
	set("screen-width", func() { cfg.ScreenWidth = *f.ScreenWidth })
	set("screen-height", func() { cfg.ScreenHeight = *f.ScreenHeight })
	set("absolute-mouse", func() { cfg.AbsMouseMove = *f.AbsMouseMove })
	set("mouse-move-threshold", func() { cfg.MouseMoveThreshold = *f.MouseMoveThreshold })
	set("mouse-pos-sync-freq", func() { cfg.MousePosSyncFreq = *f.MousePosSyncFreq })
	set("log-level", func() { cfg.LogLevel = *f.LogLevel })
	set("log-file", func() { cfg.LogFile = *f.LogFile })
}
