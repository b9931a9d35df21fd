package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadLife loads the Game of Life configuration.
// Search order: customPath -> ~/.sims/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// overrides are applied on top of the loaded file before validation.
func LoadLife(customPath string, overrides map[string]string) (LifeConfig, Source, error) {
	cfg := DefaultLife()
	src, err := load("life", customPath, defaultLifeYAML, &cfg)
	if err != nil {
		return cfg, src, err
	}
	if src == SourceBuiltin {
		cfg = DefaultLife()
	}
	if err := applyOverrides(overrides, &cfg); err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("config: invalid life config (%s): %w", src, err)
	}
	return cfg, src, nil
}

// LoadRover loads the rover configuration.
// Search order: customPath -> ~/.sims/configs/rover.yaml -> ./configs/rover.yaml -> embedded default.
// overrides are applied on top of the loaded file before validation.
func LoadRover(customPath string, overrides map[string]string) (RoverConfig, Source, error) {
	cfg := DefaultRover()
	src, err := load("rover", customPath, defaultRoverYAML, &cfg)
	if err != nil {
		return cfg, src, err
	}
	if src == SourceBuiltin {
		cfg = DefaultRover()
	}
	if err := applyOverrides(overrides, &cfg); err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("config: invalid rover config (%s): %w", src, err)
	}
	return cfg, src, nil
}

// load decodes the first available config file for a game into out.
// out is expected to hold the defaults already, so files may be partial.
func load(gameID, customPath string, embedded []byte, out any) (Source, error) {
	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return SourceCustom, nil
	}

	filename := gameID + ".yaml"

	// Broken optional files are skipped, like missing ones
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return SourceLocal, nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return SourceBuiltin, nil
	}
	return SourceEmbedded, nil
}

// applyOverrides decodes dotted key=value pairs such as grid.rows=40 onto out.
// Values are parsed as YAML scalars and unknown keys are rejected.
func applyOverrides(overrides map[string]string, out any) error {
	if len(overrides) == 0 {
		return nil
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tree := make(map[string]any)
	for _, key := range keys {
		raw := overrides[key]
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("config: override %s: %w", key, err)
		}
		// Blank values like a space glyph parse as null
		if v == nil {
			v = raw
		}

		parts := strings.Split(key, ".")
		node := tree
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = v
	}

	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("config: encode overrides: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("config: apply overrides: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sims", "configs", filename)
}
