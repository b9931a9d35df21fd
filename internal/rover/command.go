package rover

import "github.com/vovakirdan/tui-sims/internal/core"

// Command is a player instruction applied between steps.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// CommandFor maps a platform action to a tunnel command.
func CommandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CommandLeft
	case core.ActionRight:
		return CommandRight
	case core.ActionQuit:
		return CommandQuit
	default:
		return CommandNone
	}
}

// Action is the inverse of CommandFor.
func (c Command) Action() core.Action {
	switch c {
	case CommandLeft:
		return core.ActionLeft
	case CommandRight:
		return core.ActionRight
	case CommandQuit:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}
