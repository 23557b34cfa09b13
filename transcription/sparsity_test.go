package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLGR_DefectSparsity(t *testing.T) {
	p := &Problem{
		NumStates:   1,
		TimeInitial: 0,
		TimeFinal:   1,
		Mesh:        []float64{0, 1},
	}
	s, err := New(p, Options{Scheme: SchemeLGR, Degree: 2})
	assert.NoError(t, err)

	spar := s.DefectSparsity()
	rows, cols := spar.Dims()
	assert.Equal(t, 2, rows) // numMeshIntervals * d * numStates
	assert.Equal(t, 3, cols) // numGridPoints * numStates

	// Residual at node k couples to the state at every local grid point.
	for k := 0; k < 2; k++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 1., spar.At(k, j), "row %d col %d", k, j)
		}
	}
	assert.Equal(t, 6, spar.NNZ())
}

func TestLGR_DefectSparsityMultiState(t *testing.T) {
	p := &Problem{
		NumStates:   2,
		TimeInitial: 0,
		TimeFinal:   1,
		Mesh:        []float64{0, 0.5, 1},
	}
	s, err := New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.NoError(t, err)

	spar := s.DefectSparsity()
	rows, cols := spar.Dims()
	assert.Equal(t, 2*3*2, rows)
	assert.Equal(t, 7*2, cols)

	// Row for interval 0, node 0, state 0: differentiation couples state 0
	// at local points {0,1,2,3}; dynamics couples both states at point 1.
	row := 0
	assert.Equal(t, 1., spar.At(row, 0*2+0))
	assert.Equal(t, 1., spar.At(row, 1*2+0))
	assert.Equal(t, 1., spar.At(row, 2*2+0))
	assert.Equal(t, 1., spar.At(row, 3*2+0))
	assert.Equal(t, 1., spar.At(row, 1*2+1))
	// No coupling to state 1 away from the collocation point.
	assert.Equal(t, 0., spar.At(row, 0*2+1))
	assert.Equal(t, 0., spar.At(row, 3*2+1))
	// No coupling to the second interval.
	assert.Equal(t, 0., spar.At(row, 4*2+0))

	// Residuals of interval 1 never touch interval 0's interior points.
	row = 1*3*2 + 0 // interval 1, node 0, state 0
	assert.Equal(t, 0., spar.At(row, 1*2+0))
	assert.Equal(t, 1., spar.At(row, 3*2+0)) // shared boundary
	assert.Equal(t, 1., spar.At(row, 6*2+0))
}

func TestTrapezoidal_DefectSparsity(t *testing.T) {
	p := &Problem{
		NumStates:   2,
		TimeInitial: 0,
		TimeFinal:   1,
		Mesh:        []float64{0, 0.5, 1},
	}
	s, err := New(p, Options{Scheme: SchemeTrapezoidal})
	assert.NoError(t, err)

	spar := s.DefectSparsity()
	rows, cols := spar.Dims()
	assert.Equal(t, 2*2, rows)
	assert.Equal(t, 3*2, cols)

	// Interval 0 residuals couple to all states at points 0 and 1 only.
	for s0 := 0; s0 < 2; s0++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, 1., spar.At(s0, j), "row %d col %d", s0, j)
		}
		assert.Equal(t, 0., spar.At(s0, 4))
		assert.Equal(t, 0., spar.At(s0, 5))
	}
}
