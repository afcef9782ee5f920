// Package themefile loads theme records from disk and layers them over the
// built-in Ink Blue record.
package themefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/inkblue/themeconf/internal/jsconfig"
	"github.com/inkblue/themeconf/internal/tokens"
)

// ErrUnsupportedExtension is returned for a file whose extension names no
// known theme encoding.
var ErrUnsupportedExtension = errors.New("unsupported theme file extension")

// Resolved is a merged record plus the files it was built from, lowest
// precedence first.
type Resolved struct {
	Config  *tokens.Config
	Sources []string
}

// LoadFile reads a single theme record, choosing the decoder by extension.
func LoadFile(path string) (*tokens.Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the encoding named by ext (".yaml", ".json", ".toml",
// ".js" and their aliases).
func Decode(data []byte, ext string) (*tokens.Config, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var cfg tokens.Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	case ".json":
		var cfg tokens.Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	case ".toml":
		return decodeTOML(data)
	case ".js", ".mjs", ".cjs":
		return jsconfig.Parse(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedExtension, ext)
	}
}

// decodeTOML goes through a generic document because TOML has no hook for
// the font size tuple; the JSON decoder of the record handles it.
func decodeTOML(data []byte) (*tokens.Config, error) {
	var doc map[string]any
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(normalize(doc))
	if err != nil {
		return nil, fmt.Errorf("encode toml document: %w", err)
	}
	var cfg tokens.Config
	if err := json.Unmarshal(encoded, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize turns numeric leaves into strings; every leaf of the record is a
// string.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return value
	}
}

// Resolve layers theme files over tokens.Default: the search paths from
// lowest to highest precedence, then each of extra in order.
func Resolve(projectDir string, extra []string) (*Resolved, error) {
	return ResolveFrom(SearchPaths(projectDir), extra)
}

// ResolveFrom is Resolve with explicit search directories, highest
// precedence first. Missing directories are skipped; missing extra files are
// errors.
func ResolveFrom(dirs []string, extra []string) (*Resolved, error) {
	resolved := &Resolved{Config: tokens.Default()}

	for i := len(dirs) - 1; i >= 0; i-- {
		path, err := FindInDir(dirs[i])
		if err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}
		if err := resolved.apply(path); err != nil {
			return nil, err
		}
	}

	for _, path := range extra {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := resolved.apply(path); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

func (r *Resolved) apply(path string) error {
	overlay, err := LoadFile(path)
	if err != nil {
		return err
	}
	r.Config = tokens.Merge(r.Config, overlay)
	r.Sources = append(r.Sources, path)
	return nil
}
