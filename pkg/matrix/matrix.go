package matrix

import (
	"fmt"
	"math"

	"github.com/edp1096/sparse"
)

// SystemMatrix wraps the sparse package for the finite-difference system:
// one equation per grid node, assembled fresh each solver iteration.
// Indexing is 1-based to match the sparse API.
type SystemMatrix struct {
	Size   int
	matrix *sparse.Matrix
	rhs    []float64
	config *sparse.Configuration
}

func NewMatrix(size int) (*SystemMatrix, error) {
	// Translate is required: the iteration loop stamps elements again after
	// the matrix has been factored and reordered.
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &SystemMatrix{
		Size:   size,
		matrix: mat,
		rhs:    make([]float64, size+1), // 1-based indexing
		config: config,
	}, nil
}

func (m *SystemMatrix) AddElement(i, j int, value float64) error {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return fmt.Errorf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size)
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
	return nil
}

func (m *SystemMatrix) SetRHS(i int, value float64) error {
	if i <= 0 || i > m.Size {
		return fmt.Errorf("rhs index out of bounds (i=%d, size=%d)", i, m.Size)
	}
	m.rhs[i] = value
	return nil
}

func (m *SystemMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

// Solve factors and solves the assembled system. The returned slice is
// 0-based with Size entries. A singular factorization or a non-finite
// solution component is reported as an error; the caller decides the
// fallback.
func (m *SystemMatrix) Solve() ([]float64, error) {
	err := m.matrix.Factor()
	if err != nil {
		return nil, fmt.Errorf("matrix factorization failed: %v", err)
	}

	x, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return nil, fmt.Errorf("matrix solve failed: %v", err)
	}

	out := make([]float64, m.Size)
	for i := 1; i <= m.Size; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, fmt.Errorf("solution component %d is not finite", i)
		}
		out[i-1] = x[i]
	}
	return out, nil
}

func (m *SystemMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
