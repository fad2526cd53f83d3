package loader

import (
	"errors"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads configuration from YAML files.
type YAMLLoader struct {
	fileLoader
}

// NewYAMLLoader creates a new YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return NewYAMLLoaderWithFS(DefaultFS(), path)
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{fileLoader{fs: fs, path: path, parse: yaml.Unmarshal}}
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlPosition extracts the line from a yaml.v3 error message. yaml.v3 does
// not expose positions as fields.
func yamlPosition(err error) (int, bool) {
	var te *yaml.TypeError
	msg := err.Error()
	if errors.As(err, &te) && len(te.Errors) > 0 {
		msg = te.Errors[0]
	}
	m := yamlLineRe.FindStringSubmatch(msg)
	if m == nil {
		return 0, false
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return line, true
}
