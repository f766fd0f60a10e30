package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1e6:
		return fmt.Sprintf("%.3e %s", value, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue == 0:
		return fmt.Sprintf("0 %s", unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatTemperature(kelvin float64) string {
	return fmt.Sprintf("%7.2f K", kelvin)
}

func FormatCurrentDensity(value float64) string {
	return fmt.Sprintf("%6.2f A/cm2", value)
}

func FormatPercent(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e %%", value)
	}
	return fmt.Sprintf("%7.4f %%", value)
}
