package material

import "sort"

// Interpolator provides piecewise-linear lookup of the three transport
// properties over temperature. Samples are sorted ascending on construction
// (sheets are not always ordered); outside the sampled range the boundary
// value is returned unchanged, so a lookup never fails.
type Interpolator struct {
	temps        []float64
	seebeck      []float64
	resistivity  []float64
	conductivity []float64
}

func NewInterpolator(t *Table) *Interpolator {
	n := t.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return t.Temps[idx[a]] < t.Temps[idx[b]] })

	ip := &Interpolator{
		temps:        make([]float64, n),
		seebeck:      make([]float64, n),
		resistivity:  make([]float64, n),
		conductivity: make([]float64, n),
	}
	for i, j := range idx {
		ip.temps[i] = t.Temps[j]
		ip.seebeck[i] = t.Seebeck[j]
		ip.resistivity[i] = t.Resistivity[j]
		ip.conductivity[i] = t.Conductivity[j]
	}
	return ip
}

func (ip *Interpolator) Seebeck(temp float64) float64      { return ip.lookup(ip.seebeck, temp) }
func (ip *Interpolator) Resistivity(temp float64) float64  { return ip.lookup(ip.resistivity, temp) }
func (ip *Interpolator) Conductivity(temp float64) float64 { return ip.lookup(ip.conductivity, temp) }

func (ip *Interpolator) lookup(vals []float64, temp float64) float64 {
	n := len(ip.temps)
	if temp <= ip.temps[0] {
		return vals[0]
	}
	if temp >= ip.temps[n-1] {
		return vals[n-1]
	}
	k := sort.SearchFloat64s(ip.temps, temp)
	t0, t1 := ip.temps[k-1], ip.temps[k]
	if t1 == t0 { // duplicate sample temperatures
		return vals[k-1]
	}
	frac := (temp - t0) / (t1 - t0)
	return vals[k-1] + frac*(vals[k]-vals[k-1])
}
