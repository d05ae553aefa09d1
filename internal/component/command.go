package component

// Command - дискретная команда игрока за один кадр
type Command int

const (
	CommandToggleLeft Command = iota
	CommandToggleRight
	CommandRestart
	CommandPause
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandToggleLeft:
		return "toggle-left"
	case CommandToggleRight:
		return "toggle-right"
	case CommandRestart:
		return "restart"
	case CommandPause:
		return "pause"
	case CommandQuit:
		return "quit"
	}
	return "unknown"
}
