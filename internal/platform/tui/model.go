package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sims/internal/core"
	"github.com/vovakirdan/tui-sims/internal/registry"
)

// Model is the Bubble Tea model that drives one game run.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	width    int // terminal size, 0 until the first WindowSizeMsg
	height   int
	finished bool
	hold     time.Duration
	logger   *log.Logger
}

// NewModel resets the game and wraps it in a model.
// A zero seed is replaced with one taken from the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	w, h := game.Size()

	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		state:  game.State(),
		hold:   holdFinalFrame,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.game.Tick())
	return tickCmd(m.game.Tick())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()

	case doneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records the action for the next step. Quit is stepped at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.finished {
		// Skip the rest of the final frame hold.
		if action == core.ActionQuit {
			return m, tea.Quit
		}
		return m, nil
	}

	m.input.Set(action)
	if action != core.ActionQuit {
		return m, nil
	}

	m.step()
	m.logger.Debug("run quit", "game", m.game.ID(), "score", m.state.Score)
	return m, tea.Quit
}

// handleTick advances the game one step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A tick scheduled before the run ended can still arrive.
	if m.finished {
		return m, nil
	}

	m.step()
	if m.finished {
		m.logger.Debug("game over", "game", m.game.ID(), "score", m.state.Score)
		return m, doneCmd(m.hold)
	}
	return m, tickCmd(m.game.Tick())
}

func (m *Model) step() {
	res := m.game.Step(m.input)
	m.state = res.State
	m.finished = res.State.GameOver
	m.input = core.NewInputFrame()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current frame with a help footer.
func (m Model) View() string {
	w, h := m.game.Size()
	if m.width > 0 && (m.width < w || m.height < h) {
		return renderTooSmall(m.width, m.height, w, h)
	}

	m.screen.Resize(w, h)
	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)

	if m.height == 0 || m.height > h {
		frame += "\n" + m.help.View(m.keys)
	}
	return frame
}

// Run plays the game in the alternate screen until it ends or the player
// quits, returning the final state.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
