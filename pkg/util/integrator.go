package util

// Trapezoid integrates y over the abscissa x. The abscissa does not have to
// be monotonic; segments with a negative span subtract, which is the wanted
// behavior when integrating a property over a temperature field that dips.
func Trapezoid(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(x); i++ {
		sum += (y[i] + y[i-1]) / 2 * (x[i] - x[i-1])
	}
	return sum
}

// TrapezoidUniform integrates y sampled on a uniform grid with spacing dx.
func TrapezoidUniform(dx float64, y []float64) float64 {
	if len(y) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(y); i++ {
		sum += (y[i] + y[i-1]) / 2 * dx
	}
	return sum
}
