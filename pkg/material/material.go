package material

import (
	"fmt"
	"math"

	"github.com/liuke128/tegsim/internal/consts"
)

type Kind int

const (
	P Kind = iota
	N
)

func (k Kind) String() string {
	switch k {
	case P:
		return "P"
	case N:
		return "N"
	}
	return "?"
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "P", "p":
		return P, nil
	case "N", "n":
		return N, nil
	}
	return 0, fmt.Errorf("unknown material kind %q", s)
}

// RawSample is one row of a characterization sheet in the units the sheets
// are recorded in: temperature in K, Seebeck coefficient in uV/K (magnitude
// for N-type rows), resistivity in the sheet's column unit, and either the
// measured figure of merit ZT (P-type sheets) or the thermal conductivity in
// W/(m*K) (N-type sheets) in the last column.
type RawSample struct {
	Temp    float64
	Seebeck float64
	Rho     float64
	KappaZT float64
}

// Table holds temperature-ordered transport properties for one composition
// in SI units. Built once, immutable afterward.
type Table struct {
	Kind        Kind
	Composition string

	Temps        []float64 // K
	Seebeck      []float64 // V/K
	Resistivity  []float64 // Ohm*m
	Conductivity []float64 // W/(m*K)
}

// NewPTable converts P-type sheet rows. Seebeck uV/K -> V/K, resistivity
// x1e-6 -> Ohm*m. The sheets report ZT instead of conductivity, so kappa is
// recovered from kappa = S^2*T/(rho*ZT), with a fallback constant for rows
// where the measured ZT is not positive.
func NewPTable(composition string, rows []RawSample) (*Table, error) {
	t := &Table{Kind: P, Composition: composition}
	for _, r := range rows {
		s := r.Seebeck * 1e-6
		rho := r.Rho * 1e-6
		kappa := consts.FallbackConductivity
		if r.KappaZT > 0 && rho > 0 {
			kappa = s * s * r.Temp / (rho * r.KappaZT)
		}
		t.Temps = append(t.Temps, r.Temp)
		t.Seebeck = append(t.Seebeck, s)
		t.Resistivity = append(t.Resistivity, rho)
		t.Conductivity = append(t.Conductivity, kappa)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("P-type table %q: %v", composition, err)
	}
	return t, nil
}

// NewNTable converts N-type sheet rows. The sheets record the Seebeck
// magnitude; the sign convention makes it negative. Resistivity x1e-5 ->
// Ohm*m, conductivity is measured directly.
func NewNTable(composition string, rows []RawSample) (*Table, error) {
	t := &Table{Kind: N, Composition: composition}
	for _, r := range rows {
		t.Temps = append(t.Temps, r.Temp)
		t.Seebeck = append(t.Seebeck, -r.Seebeck*1e-6)
		t.Resistivity = append(t.Resistivity, r.Rho*1e-5)
		t.Conductivity = append(t.Conductivity, r.KappaZT)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("N-type table %q: %v", composition, err)
	}
	return t, nil
}

func (t *Table) validate() error {
	n := len(t.Temps)
	if n < 2 {
		return fmt.Errorf("needs at least 2 samples, got %d", n)
	}
	if len(t.Seebeck) != n || len(t.Resistivity) != n || len(t.Conductivity) != n {
		return fmt.Errorf("property columns have mismatched lengths")
	}
	for i := 0; i < n; i++ {
		for _, v := range []float64{t.Temps[i], t.Seebeck[i], t.Resistivity[i], t.Conductivity[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("sample %d holds a non-finite value", i)
			}
		}
		if t.Temps[i] <= 0 {
			return fmt.Errorf("sample %d: temperature %g K is not positive", i, t.Temps[i])
		}
		if t.Resistivity[i] <= 0 || t.Conductivity[i] <= 0 {
			return fmt.Errorf("sample %d: resistivity and conductivity must be positive", i)
		}
	}
	return nil
}

func (t *Table) Len() int { return len(t.Temps) }

// TempRange returns the lowest and highest sampled temperature.
func (t *Table) TempRange() (float64, float64) {
	lo, hi := t.Temps[0], t.Temps[0]
	for _, v := range t.Temps[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
