// Package config resolves settings from layered sources: defaults, a JSON or
// YAML file, prefixed environment variables and explicit overrides, highest
// last. Nested file sections are flattened with dots, so
// "render: {strategy: x}" is read as "render.strategy".
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/kleinwareio/liketype/errors"
	"gopkg.in/yaml.v3"
)

// Source names the layer a value came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceFile     Source = "file"
	SourceEnv      Source = "env"
	SourceOverride Source = "override"
)

// lookup order, strongest first
var precedence = []Source{SourceOverride, SourceEnv, SourceFile, SourceDefault}

// Config holds layered configuration values. It is not safe for concurrent
// mutation.
type Config struct {
	layers map[Source]map[string]any
}

// New creates a Config with every layer empty.
func New() *Config {
	c := &Config{layers: make(map[Source]map[string]any, len(precedence))}
	for _, s := range precedence {
		c.layers[s] = map[string]any{}
	}
	return c
}

// WithDefaults fills the default layer.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	for k, v := range defaults {
		c.layers[SourceDefault][k] = v
	}
	return c
}

// LoadFile reads path into the file layer. Files ending in .yaml or .yml are
// YAML, anything else JSON.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.Wrapf(err, "cannot read config file %s", path)
	}

	var doc map[string]any
	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return apperrors.Decode(format, err).WithDetail("path", path)
	}

	flatten("", doc, c.layers[SourceFile])
	return nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if section, ok := v.(map[string]any); ok {
			flatten(key, section, out)
			continue
		}
		out[key] = v
	}
}

// LoadEnv reads PREFIX_* variables into the env layer, or every variable when
// prefix is empty. LIKETYPE_RENDER_STRATEGY becomes render.strategy for prefix
// LIKETYPE.
func (c *Config) LoadEnv(prefix string) *Config {
	marker := ""
	if prefix != "" {
		marker = prefix + "_"
	}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, marker) {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, marker), "_", "."))
		c.layers[SourceEnv][key] = value
	}
	return c
}

// Set stores an override, which beats every other layer.
func (c *Config) Set(key string, value any) {
	c.layers[SourceOverride][key] = value
}

// Lookup returns the strongest value for key and the layer holding it.
func (c *Config) Lookup(key string) (any, Source, bool) {
	for _, s := range precedence {
		if v, ok := c.layers[s][key]; ok {
			return v, s, true
		}
	}
	return nil, "", false
}

// GetString returns key rendered as a string, "" when unset.
func (c *Config) GetString(key string) string {
	v, _, ok := c.Lookup(key)
	switch {
	case !ok || v == nil:
		return ""
	case isString(v):
		return v.(string)
	default:
		return fmt.Sprint(v)
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// GetInt returns key as an int, 0 when unset or not numeric.
func (c *Config) GetInt(key string) int {
	v, _, _ := c.Lookup(key)
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// GetBool returns key as a bool. Strings accept strconv.ParseBool forms and "yes".
func (c *Config) GetBool(key string) bool {
	v, _, _ := c.Lookup(key)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if strings.EqualFold(b, "yes") {
			return true
		}
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	}
	return false
}

// Validate fails with a ValidationError listing every required key that no
// layer provides.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if _, _, ok := c.Lookup(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{MissingKeys: missing}
}

// ValidationError lists missing required keys.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return "missing required config keys: " + strings.Join(e.MissingKeys, ", ")
}

// Keys returns every key known to any layer, sorted.
func (c *Config) Keys() []string {
	seen := map[string]struct{}{}
	for _, layer := range c.layers {
		for k := range layer {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
