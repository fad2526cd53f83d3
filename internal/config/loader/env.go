package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables. A variable
// named PREFIX_TAB_WIDTH sets the key "tab_width".
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "GAPTEXT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderWithEnviron creates a loader reading from a fixed list of
// KEY=VALUE pairs instead of the process environment.
func NewEnvLoaderWithEnviron(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: func() []string { return environ }}
}

// Load reads environment variables and returns a configuration map.
// Empty values are treated as set. Values are returned as strings; the
// consumer converts them to the type of the setting they target.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		key := l.envToKey(name)
		if key == "" {
			continue
		}
		config[key] = value
	}
	return config, nil
}

// envToKey converts GAPTEXT_TAB_WIDTH to tab_width.
func (l *EnvLoader) envToKey(env string) string {
	return strings.ToLower(strings.TrimPrefix(env, l.prefix))
}

// ParseBool parses the boolean spellings accepted in configuration:
// true/yes/on/1 and false/no/off/0, in any case.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
