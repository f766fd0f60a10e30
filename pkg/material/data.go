package material

// Built-in characterization data for the PbTe material families the
// simulator ships with: P-type PbTe1-yIy (compositions 0.01, 0.02, 0.03)
// and N-type PbTe:Na/Ag2Te (compositions 0.0004 .. 0.0028). Rows are in
// sheet units (see RawSample); the P-type sheets report ZT in the last
// column, the N-type sheets report thermal conductivity.

var pSheets = map[string][]RawSample{
	"0.01": {
		{300, 108, 8.2, 0.31},
		{350, 128, 9.6, 0.42},
		{400, 149, 11.3, 0.55},
		{450, 171, 13.2, 0.69},
		{500, 193, 15.4, 0.84},
		{550, 214, 17.8, 0.98},
		{600, 233, 20.5, 1.10},
		{650, 248, 23.4, 1.17},
		{700, 258, 26.4, 1.19},
	},
	"0.02": {
		{300, 96, 6.4, 0.34},
		{350, 116, 7.5, 0.47},
		{400, 137, 8.9, 0.62},
		{450, 159, 10.5, 0.78},
		{500, 182, 12.3, 0.95},
		{550, 204, 14.3, 1.12},
		{600, 224, 16.6, 1.26},
		{650, 241, 19.1, 1.35},
		{700, 252, 21.8, 1.38},
	},
	"0.03": {
		{300, 85, 5.1, 0.36},
		{350, 104, 6.0, 0.50},
		{400, 124, 7.1, 0.66},
		{450, 145, 8.4, 0.84},
		{500, 167, 9.9, 1.02},
		{550, 189, 11.6, 1.20},
		{600, 210, 13.5, 1.36},
		{650, 228, 15.6, 1.46},
		{700, 241, 17.9, 1.49},
	},
}

var nSheets = map[string][]RawSample{
	"0.0004": {
		{300, 92, 0.52, 2.31},
		{350, 110, 0.63, 2.12},
		{400, 129, 0.76, 1.95},
		{450, 149, 0.91, 1.80},
		{500, 169, 1.08, 1.67},
		{550, 188, 1.27, 1.57},
		{600, 206, 1.48, 1.50},
		{650, 221, 1.71, 1.46},
		{700, 232, 1.96, 1.45},
	},
	"0.0012": {
		{300, 104, 0.68, 2.10},
		{350, 123, 0.82, 1.93},
		{400, 143, 0.98, 1.77},
		{450, 164, 1.17, 1.63},
		{500, 184, 1.38, 1.51},
		{550, 203, 1.61, 1.42},
		{600, 221, 1.86, 1.35},
		{650, 236, 2.13, 1.31},
		{700, 246, 2.42, 1.30},
	},
	"0.0020": {
		{300, 115, 0.86, 1.92},
		{350, 135, 1.03, 1.76},
		{400, 156, 1.23, 1.61},
		{450, 177, 1.45, 1.48},
		{500, 198, 1.70, 1.37},
		{550, 218, 1.97, 1.29},
		{600, 236, 2.27, 1.23},
		{650, 250, 2.59, 1.19},
		{700, 259, 2.93, 1.18},
	},
	"0.0028": {
		{300, 124, 1.06, 1.78},
		{350, 145, 1.26, 1.62},
		{400, 167, 1.50, 1.48},
		{450, 189, 1.76, 1.36},
		{500, 211, 2.05, 1.26},
		{550, 231, 2.37, 1.18},
		{600, 249, 2.72, 1.12},
		{650, 263, 3.09, 1.09},
		{700, 272, 3.48, 1.08},
	},
}

// BuiltinLibrary builds the library of shipped material tables. The data is
// fixed at compile time, so construction failures are programming errors.
func BuiltinLibrary() (*Library, error) {
	lib, err := NewLibrary()
	if err != nil {
		return nil, err
	}
	for comp, rows := range pSheets {
		t, err := NewPTable(comp, rows)
		if err != nil {
			return nil, err
		}
		if err := lib.Register(t); err != nil {
			return nil, err
		}
	}
	for comp, rows := range nSheets {
		t, err := NewNTable(comp, rows)
		if err != nil {
			return nil, err
		}
		if err := lib.Register(t); err != nil {
			return nil, err
		}
	}
	return lib, nil
}
