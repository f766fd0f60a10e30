package material

import (
	"math"
	"testing"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tab, err := NewPTable("0.02", []RawSample{
		{300, 96, 6.4, 0.34},
		{400, 137, 8.9, 0.62},
		{500, 182, 12.3, 0.95},
		{600, 224, 16.6, 1.26},
		{700, 252, 21.8, 1.38},
	})
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	return tab
}

func TestInterpolatorExactAtSamples(t *testing.T) {
	tab := testTable(t)
	ip := NewInterpolator(tab)

	for i, temp := range tab.Temps {
		if got := ip.Seebeck(temp); got != tab.Seebeck[i] {
			t.Errorf("Seebeck(%v) = %v, want sample value %v", temp, got, tab.Seebeck[i])
		}
		if got := ip.Resistivity(temp); got != tab.Resistivity[i] {
			t.Errorf("Resistivity(%v) = %v, want sample value %v", temp, got, tab.Resistivity[i])
		}
		if got := ip.Conductivity(temp); got != tab.Conductivity[i] {
			t.Errorf("Conductivity(%v) = %v, want sample value %v", temp, got, tab.Conductivity[i])
		}
	}
}

func TestInterpolatorMidpoint(t *testing.T) {
	tab := testTable(t)
	ip := NewInterpolator(tab)

	want := (tab.Seebeck[0] + tab.Seebeck[1]) / 2
	if got := ip.Seebeck(350); !almostEqual(got, want, 1e-15) {
		t.Errorf("Seebeck(350) = %v, want midpoint %v", got, want)
	}
}

func TestInterpolatorClampsOutsideRange(t *testing.T) {
	tab := testTable(t)
	ip := NewInterpolator(tab)

	cases := []struct {
		temp float64
		want float64
	}{
		{250, tab.Seebeck[0]},
		{300, tab.Seebeck[0]},
		{700, tab.Seebeck[len(tab.Seebeck)-1]},
		{750, tab.Seebeck[len(tab.Seebeck)-1]},
		{math.Inf(-1), tab.Seebeck[0]},
		{math.Inf(1), tab.Seebeck[len(tab.Seebeck)-1]},
	}
	for _, c := range cases {
		if got := ip.Seebeck(c.temp); got != c.want {
			t.Errorf("Seebeck(%v) = %v, want clamped %v", c.temp, got, c.want)
		}
	}
}

func TestInterpolatorSortsUnorderedSamples(t *testing.T) {
	tab, err := NewPTable("0.02", []RawSample{
		{500, 182, 12.3, 0.95},
		{300, 96, 6.4, 0.34},
		{400, 137, 8.9, 0.62},
	})
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	ip := NewInterpolator(tab)

	// 350 K falls between the 300 K and 400 K samples once sorted.
	want := (96e-6 + 137e-6) / 2
	if got := ip.Seebeck(350); !almostEqual(got, want, 1e-15) {
		t.Errorf("Seebeck(350) = %v, want %v", got, want)
	}
}
