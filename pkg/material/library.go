package material

import (
	"fmt"
	"sort"
	"sync"
)

type tableKey struct {
	kind        Kind
	composition string
}

// Library owns the registered property tables and their derived
// interpolators. Interpolators are built lazily on first use and cached per
// (kind, composition) key; the mutex keeps the build-once guarantee when the
// host application calls in from multiple goroutines.
type Library struct {
	mu      sync.Mutex
	tables  map[tableKey]*Table
	interps map[tableKey]*Interpolator
}

func NewLibrary(tables ...*Table) (*Library, error) {
	l := &Library{
		tables:  make(map[tableKey]*Table),
		interps: make(map[tableKey]*Interpolator),
	}
	for _, t := range tables {
		if err := l.Register(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Library) Register(t *Table) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	k := tableKey{t.Kind, t.Composition}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.tables[k]; exists {
		return fmt.Errorf("table %s/%s already registered", t.Kind, t.Composition)
	}
	l.tables[k] = t
	return nil
}

func (l *Library) Table(kind Kind, composition string) (*Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.tables[tableKey{kind, composition}]
	if !ok {
		return nil, fmt.Errorf("no table for %s-type composition %q", kind, composition)
	}
	return t, nil
}

// Interpolator returns the cached interpolator for the key, building it on
// the first request.
func (l *Library) Interpolator(kind Kind, composition string) (*Interpolator, error) {
	k := tableKey{kind, composition}
	l.mu.Lock()
	defer l.mu.Unlock()
	if ip, ok := l.interps[k]; ok {
		return ip, nil
	}
	t, ok := l.tables[k]
	if !ok {
		return nil, fmt.Errorf("no table for %s-type composition %q", kind, composition)
	}
	ip := NewInterpolator(t)
	l.interps[k] = ip
	return ip, nil
}

// Compositions lists the registered composition labels for one kind, sorted.
func (l *Library) Compositions(kind Kind) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for k := range l.tables {
		if k.kind == kind {
			out = append(out, k.composition)
		}
	}
	sort.Strings(out)
	return out
}
