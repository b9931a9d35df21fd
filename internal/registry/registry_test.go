package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sims/internal/core"
)

type fakeGame struct{ id string }

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }
func (g *fakeGame) Tick() time.Duration                  { return time.Millisecond }
func (g *fakeGame) Size() (int, int)                     { return 1, 1 }
func (g *fakeGame) Summary() string                      { return "" }

func TestRegisterCreateList(t *testing.T) {
	var got Options
	Register("test_zeta", "Zeta", func(opts Options) (Game, error) {
		got = opts
		return &fakeGame{id: "test_zeta"}, nil
	})
	Register("test_alpha", "Alpha", func(Options) (Game, error) {
		return &fakeGame{id: "test_alpha"}, nil
	})

	if !Exists("test_zeta") || Exists("test_missing") {
		t.Fatal("Exists reports wrong registrations")
	}

	opts := Options{ConfigPath: "custom.yaml", Overrides: map[string]string{"grid.rows": "5"}}
	g, err := Create("test_zeta", opts)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_zeta" || got.ConfigPath != "custom.yaml" || got.Overrides["grid.rows"] != "5" {
		t.Errorf("Create returned %q with options %+v", g.ID(), got)
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if strings.Join(ids, ",") != "test_alpha=Alpha,test_zeta=Zeta" {
		t.Errorf("List() = %v, expected sorted test games", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &fakeGame{id: "test_dup"}, nil }
	Register("test_dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "Dup", f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("test_nope", Options{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}

	boom := errors.New("boom")
	Register("test_broken", "Broken", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("test_broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}
