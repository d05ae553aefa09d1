package component

import "night-guard/internal/config"

// Power - запас энергии охранника, от 0 до config.MaxPower
type Power struct {
	Value float64
}

// NewPower возвращает полный запас энергии
func NewPower() Power {
	return Power{Value: config.MaxPower}
}

// Exhausted сообщает, что энергия закончилась
func (p Power) Exhausted() bool {
	return p.Value == 0
}
