package component

// Side - сторона комнаты
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Doors хранит состояние двух дверей: true - закрыта.
type Doors struct {
	LeftClosed  bool
	RightClosed bool
	locked      bool
}

// Toggle переключает дверь на указанной стороне.
// Пока двери заблокированы (игра окончена), ничего не делает и возвращает false.
func (d *Doors) Toggle(side Side) bool {
	if d.locked {
		return false
	}
	switch side {
	case SideLeft:
		d.LeftClosed = !d.LeftClosed
	case SideRight:
		d.RightClosed = !d.RightClosed
	default:
		return false
	}
	return true
}

// Closed возвращает, закрыта ли дверь на стороне side
func (d *Doors) Closed(side Side) bool {
	if side == SideLeft {
		return d.LeftClosed
	}
	return d.RightClosed
}

// Lock запрещает переключение дверей
func (d *Doors) Lock() {
	d.locked = true
}

// Locked сообщает, заблокированы ли двери
func (d *Doors) Locked() bool {
	return d.locked
}
