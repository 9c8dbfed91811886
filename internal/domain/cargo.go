package domain

import "math"

// CargoMode тип груза
type CargoMode string

const (
	// ModePalletized стандартные паллеты: одна паллета занимает одну ячейку
	ModePalletized CargoMode = "palletized"
	// ModeCustom нестандартный груз с произвольными габаритами
	ModeCustom CargoMode = "custom"
)

// IsValid проверяет, что режим известен
func (m CargoMode) IsValid() bool {
	return m == ModePalletized || m == ModeCustom
}

// Dimensions габариты в миллиметрах
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
}

// IsPositive возвращает true, если все оси строго больше нуля
func (d Dimensions) IsPositive() bool {
	return d.Width > 0 && d.Height > 0 && d.Length > 0
}

// IsValidInput возвращает true для конечных неотрицательных значений.
// Нулевые оси допустимы, отрицательные и NaN/Inf отклоняются на входе в систему.
func (d Dimensions) IsValidInput() bool {
	for _, v := range []float64{d.Width, d.Height, d.Length} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}
