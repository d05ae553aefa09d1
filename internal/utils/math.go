// internal/utils/math.go
package utils

import "image/color"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpColor смешивает два цвета, t в диапазоне [0, 1]
func LerpColor(from, to color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(Lerp(float32(from.R), float32(to.R), t)),
		G: uint8(Lerp(float32(from.G), float32(to.G), t)),
		B: uint8(Lerp(float32(from.B), float32(to.B), t)),
		A: uint8(Lerp(float32(from.A), float32(to.A), t)),
	}
}
