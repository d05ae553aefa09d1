// internal/input/input.go
package input

import (
	"night-guard/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding связывает клавишу с командой
type Binding struct {
	Key     ebiten.Key
	Command component.Command
}

// DefaultBindings - раскладка по умолчанию
var DefaultBindings = []Binding{
	{Key: ebiten.KeyA, Command: component.CommandToggleLeft},
	{Key: ebiten.KeyD, Command: component.CommandToggleRight},
	{Key: ebiten.KeyR, Command: component.CommandRestart},
	{Key: ebiten.KeyP, Command: component.CommandPause},
	{Key: ebiten.KeyEscape, Command: component.CommandQuit},
}

// Mapper превращает нажатия клавиш за кадр в команды
type Mapper struct {
	bindings []Binding
	buf      []component.Command
}

func NewMapper(bindings []Binding) *Mapper {
	if len(bindings) == 0 {
		bindings = DefaultBindings
	}
	return &Mapper{bindings: bindings}
}

// Poll возвращает команды, клавиши которых были нажаты в этом кадре.
// Закрытие окна тоже считается командой выхода.
// Возвращаемый срез действителен до следующего вызова Poll.
func (m *Mapper) Poll() []component.Command {
	m.buf = m.buf[:0]
	for _, b := range m.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			m.buf = append(m.buf, b.Command)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		m.buf = append(m.buf, component.CommandQuit)
	}
	return m.buf
}

// Has сообщает, есть ли команда c в списке
func Has(cmds []component.Command, c component.Command) bool {
	for _, cmd := range cmds {
		if cmd == c {
			return true
		}
	}
	return false
}
