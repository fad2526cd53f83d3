package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/gaptext/internal/config/loader"
	"github.com/dshills/gaptext/internal/engine"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "GAPTEXT_"

// Limits enforced by Validate.
const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

// Settings holds every user-configurable option.
type Settings struct {
	// Editing
	TabWidth        int  `toml:"tab_width" yaml:"tab_width"`
	AutoIndent      bool `toml:"auto_indent" yaml:"auto_indent"`
	GroupEdits      bool `toml:"group_edits" yaml:"group_edits"`
	HistoryLimit    int  `toml:"history_limit" yaml:"history_limit"`
	InitialCapacity int  `toml:"initial_capacity" yaml:"initial_capacity"`

	// Display
	ShowLineNumbers    bool `toml:"show_line_numbers" yaml:"show_line_numbers"`
	SyntaxHighlighting bool `toml:"syntax_highlighting" yaml:"syntax_highlighting"`
	ShowStatusBar      bool `toml:"show_status_bar" yaml:"show_status_bar"`
	ShowWelcome        bool `toml:"show_welcome" yaml:"show_welcome"`

	// Files
	WatchFile bool `toml:"watch_file" yaml:"watch_file"`

	// Logging
	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TabWidth:           engine.DefaultTabWidth,
		AutoIndent:         true,
		InitialCapacity:    engine.DefaultCapacity,
		ShowLineNumbers:    true,
		SyntaxHighlighting: true,
		ShowStatusBar:      true,
		ShowWelcome:        true,
		WatchFile:          true,
		LogLevel:           "info",
	}
}

// DefaultPath returns the user configuration file location, or "" if the
// user configuration directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gaptext", "config.toml")
}

// Load resolves settings from the defaults, the file at path (skipped when
// path is empty or the file does not exist) and the process environment.
func Load(path string) (Settings, error) {
	return LoadFrom(loader.DefaultFS(), path, loader.NewEnvLoader(EnvPrefix))
}

// LoadFrom is Load with an explicit file system and environment source.
func LoadFrom(fsys loader.FileSystem, path string, env loader.Loader) (Settings, error) {
	s := Default()

	var fileMap map[string]any
	if path != "" {
		m, err := loader.ForPath(fsys, path).Load()
		if err != nil {
			return s, err
		}
		fileMap = m
	}

	var envMap map[string]any
	if env != nil {
		m, err := env.Load()
		if err != nil {
			return s, fmt.Errorf("reading environment: %w", err)
		}
		envMap = m
	}

	if err := s.apply(loader.Merge(fileMap, envMap)); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// apply decodes values over the current settings. Keys that are not
// settings are ignored.
func (s *Settings) apply(values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	values, err := coerce(values)
	if err != nil {
		return err
	}

	// Round-trip through YAML so values keep YAML's scalar typing rules
	// regardless of which source produced them.
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return &ValidationError{Key: "settings", Value: string(bytes.TrimSpace(data)), Message: err.Error()}
	}
	return nil
}

// settingKinds maps each yaml key of Settings to its field kind.
var settingKinds = func() map[string]reflect.Kind {
	t := reflect.TypeOf(Settings{})
	kinds := make(map[string]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if tag := f.Tag.Get("yaml"); tag != "" {
			kinds[tag] = f.Type.Kind()
		}
	}
	return kinds
}()

// coerce converts string values to the kind of the setting they target.
// Environment values always arrive as strings, and string settings such
// as log_level must keep words like "off" as text.
func coerce(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for key, v := range values {
		str, isString := v.(string)
		if !isString {
			out[key] = v
			continue
		}
		switch settingKinds[key] {
		case reflect.Bool:
			b, ok := loader.ParseBool(str)
			if !ok {
				return nil, &ValidationError{Key: key, Value: str, Message: "must be a boolean"}
			}
			out[key] = b
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(str))
			if err != nil {
				return nil, &ValidationError{Key: key, Value: str, Message: "must be an integer"}
			}
			out[key] = n
		default:
			out[key] = str
		}
	}
	return out, nil
}

// Validate reports the first setting with an unacceptable value.
func (s Settings) Validate() error {
	switch {
	case s.TabWidth < MinTabWidth || s.TabWidth > MaxTabWidth:
		return &ValidationError{Key: "tab_width", Value: s.TabWidth,
			Message: fmt.Sprintf("must be between %d and %d", MinTabWidth, MaxTabWidth)}
	case s.HistoryLimit < 0:
		return &ValidationError{Key: "history_limit", Value: s.HistoryLimit, Message: "must not be negative"}
	case s.InitialCapacity < 0:
		return &ValidationError{Key: "initial_capacity", Value: s.InitialCapacity, Message: "must not be negative"}
	}

	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "none", "off":
	default:
		return &ValidationError{Key: "log_level", Value: s.LogLevel, Message: "unknown level"}
	}
	return nil
}

// EngineOptions converts the editing settings into session options.
func (s Settings) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithTabWidth(s.TabWidth),
		engine.WithAutoIndent(s.AutoIndent),
		engine.WithGroupEdits(s.GroupEdits),
		engine.WithHistoryLimit(s.HistoryLimit),
		engine.WithCapacity(s.InitialCapacity),
	}
}

// WriteTOML encodes the settings as a TOML document.
func (s Settings) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}
