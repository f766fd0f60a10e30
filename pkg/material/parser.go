package material

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads characterization tables from plain text, the portable stand-in
// for the measurement spreadsheets. A file holds one or more tables:
//
//	* optional comment
//	.material P 0.02
//	300  96  6.4  0.34
//	350  116 7.5  0.47
//	...
//
// Each data row is temperature, Seebeck, resistivity and the sheet's last
// column (ZT for P-type, conductivity for N-type), whitespace separated, in
// sheet units. Lines starting with "*" are comments.
func Parse(input string) ([]*Table, error) {
	var (
		tables  []*Table
		kind    Kind
		comp    string
		rows    []RawSample
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		var (
			t   *Table
			err error
		)
		switch kind {
		case P:
			t, err = NewPTable(comp, rows)
		case N:
			t, err = NewNTable(comp, rows)
		}
		if err != nil {
			return err
		}
		tables = append(tables, t)
		rows = nil
		started = false
		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "*") {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if err := flush(); err != nil {
				return nil, err
			}
			fields := strings.Fields(line)
			if len(fields) != 3 || !strings.EqualFold(fields[0], ".material") {
				return nil, fmt.Errorf("line %d: expected \".material <kind> <composition>\", got %q", lineNo, line)
			}
			k, err := ParseKind(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNo, err)
			}
			kind, comp, started = k, fields[2], true
			continue
		}

		if !started {
			return nil, fmt.Errorf("line %d: data row before any .material directive", lineNo)
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 columns, got %d", lineNo, len(fields))
		}
		var vals [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad number %q: %v", lineNo, f, err)
			}
			vals[i] = v
		}
		rows = append(rows, RawSample{Temp: vals[0], Seebeck: vals[1], Rho: vals[2], KappaZT: vals[3]})
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no material tables found")
	}
	return tables, nil
}
