package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixOps(t *testing.T) {
	const tol = 1e-12
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	B := A.Transpose()
	nr, nc := B.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 2., B.At(1, 0))
	assert.Equal(t, 6., B.At(2, 1))

	C := A.Mul(B) // 2x2
	assert.InDeltaf(t, 14, C.At(0, 0), tol, "C[0][0]")
	assert.InDeltaf(t, 32, C.At(0, 1), tol, "C[0][1]")
	assert.InDeltaf(t, 77, C.At(1, 1), tol, "C[1][1]")

	S := A.SliceCols(1, 3)
	nr, nc = S.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 2., S.At(0, 0))
	assert.Equal(t, 6., S.At(1, 1))

	// Copy does not alias.
	D := A.Copy()
	D.Set(0, 0, 99)
	assert.Equal(t, 1., A.At(0, 0))
}

func TestMatrixInverse(t *testing.T) {
	const tol = 1e-12
	A := NewMatrix(2, 2, []float64{
		4, 7,
		2, 6,
	})
	Ainv, err := A.Inverse()
	assert.NoError(t, err)
	I := A.Mul(Ainv)
	assert.InDeltaf(t, 1, I.At(0, 0), tol, "I[0][0]")
	assert.InDeltaf(t, 0, I.At(0, 1), tol, "I[0][1]")
	assert.InDeltaf(t, 0, I.At(1, 0), tol, "I[1][0]")
	assert.InDeltaf(t, 1, I.At(1, 1), tol, "I[1][1]")
}

func TestMatrixPanics(t *testing.T) {
	A := NewMatrix(2, 2)
	assert.Panics(t, func() { A.SliceCols(1, 5) })
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
}
