package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the user config directory at an empty temp dir.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var life LifeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("life"), &life); err != nil {
		t.Fatalf("embedded life.yaml: %v", err)
	}
	if life != DefaultLife() {
		t.Errorf("embedded life config %+v differs from DefaultLife() %+v", life, DefaultLife())
	}

	var rover RoverConfig
	if err := yaml.Unmarshal(GetDefaultYAML("rover"), &rover); err != nil {
		t.Fatalf("embedded rover.yaml: %v", err)
	}
	if rover != DefaultRover() {
		t.Errorf("embedded rover config %+v differs from DefaultRover() %+v", rover, DefaultRover())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded YAML")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultLife().Validate(); err != nil {
		t.Errorf("DefaultLife invalid: %v", err)
	}
	if err := DefaultRover().Validate(); err != nil {
		t.Errorf("DefaultRover invalid: %v", err)
	}
	if DefaultLife().Tick().Milliseconds() != 100 {
		t.Errorf("life tick = %v, expected 100ms", DefaultLife().Tick())
	}
	if DefaultRover().Tick().Milliseconds() != 70 {
		t.Errorf("rover tick = %v, expected 70ms", DefaultRover().Tick())
	}
}

func TestLoadLifeEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadLife("", nil)
	if err != nil {
		t.Fatalf("LoadLife() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", src)
	}
	if cfg != DefaultLife() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadLifePartialOverride(t *testing.T) {
	isolate(t)
	path := writeFile(t, "life.yaml", "grid:\n  rows: 12\n  density: 0.5\n")

	cfg, src, err := LoadLife(path, nil)
	if err != nil {
		t.Fatalf("LoadLife() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected custom", src)
	}
	if cfg.Grid.Rows != 12 || cfg.Grid.Density != 0.5 {
		t.Errorf("overrides not applied: %+v", cfg.Grid)
	}
	if cfg.Grid.Cols != 60 || cfg.TickMS != 100 {
		t.Errorf("missing fields should keep defaults: %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sims", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rover.yaml"), []byte("tick_ms: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadRover("", nil)
	if err != nil {
		t.Fatalf("LoadRover() failed: %v", err)
	}
	if src != SourceUser || cfg.TickMS != 50 {
		t.Errorf("got source %q tick %d, expected user config with tick 50", src, cfg.TickMS)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		load    func(path string) error
		body    string
		wantErr string
	}{
		{
			name:    "unparsable yaml",
			load:    func(p string) error { _, _, err := LoadLife(p, nil); return err },
			body:    "grid: [",
			wantErr: "failed to parse",
		},
		{
			name:    "life density out of range",
			load:    func(p string) error { _, _, err := LoadLife(p, nil); return err },
			body:    "grid:\n  density: 1.5\n",
			wantErr: "grid.density",
		},
		{
			name:    "corridor wider than field",
			load:    func(p string) error { _, _, err := LoadRover(p, nil); return err },
			body:    "field:\n  width: 15\ncorridor:\n  width: 14\n",
			wantErr: "field.width",
		},
		{
			name:    "multi-rune glyph",
			load:    func(p string) error { _, _, err := LoadRover(p, nil); return err },
			body:    "glyphs:\n  rover: \"AB\"\n",
			wantErr: "glyphs.rover",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.load(writeFile(t, "cfg.yaml", tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, _, err := LoadLife(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, "life.yaml", "grid:\n  rows: 12\n  density: 0.5\n")

	cfg, _, err := LoadLife(path, map[string]string{
		"grid.rows":    "40",
		"grid.density": "0",
		"glyphs.dead":  " ",
	})
	if err != nil {
		t.Fatalf("LoadLife() failed: %v", err)
	}
	if cfg.Grid.Rows != 40 || cfg.Grid.Density != 0 {
		t.Errorf("overrides should win over the file: %+v", cfg.Grid)
	}
	if cfg.Grid.Cols != 60 || cfg.Glyphs.Dead != " " {
		t.Errorf("untouched fields should keep their values: %+v", cfg)
	}

	rover, _, err := LoadRover("", map[string]string{"corridor.width": "10", "tick_ms": "35"})
	if err != nil {
		t.Fatalf("LoadRover() failed: %v", err)
	}
	if rover.Corridor.Width != 10 || rover.TickMS != 35 || rover.Field.Width != 60 {
		t.Errorf("rover overrides not applied: %+v", rover)
	}
}

func TestLoadOverrideErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
	}{
		{"unknown key", map[string]string{"grid.rowz": "10"}, "rowz"},
		{"wrong type", map[string]string{"grid.cols": "wide"}, "apply overrides"},
		{"fails validation", map[string]string{"grid.density": "2"}, "grid.density"},
		{"zero rows", map[string]string{"grid.rows": "0"}, "grid.rows"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadLife("", tc.overrides)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := LifeConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("zero config should be invalid")
	}
	for _, field := range []string{"grid.rows", "grid.cols", "tick_ms", "glyphs.alive"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s: %v", field, err)
		}
	}
}

func TestRune(t *testing.T) {
	if Rune("█") != '█' {
		t.Error("Rune should decode multi-byte glyphs")
	}
	if Rune("A") != 'A' {
		t.Error("Rune should decode ASCII glyphs")
	}
}
