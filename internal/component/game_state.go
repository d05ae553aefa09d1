package component

// Status - состояние игровой сессии
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

// GameOverReason - почему сессия закончилась
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonPowerOut
	ReasonBreach
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonPowerOut:
		return "power out"
	case ReasonBreach:
		return "monster got in"
	}
	return "none"
}
