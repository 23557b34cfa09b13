package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trajopt/collo/utils"
)

func TestTrapezoidal_Structure(t *testing.T) {
	const tol = 1e-12
	p := &Problem{
		NumStates:   1,
		TimeInitial: 1,
		TimeFinal:   3,
		Mesh:        []float64{0, 0.25, 0.5, 1},
	}
	s, err := New(p, Options{Scheme: SchemeTrapezoidal})
	assert.NoError(t, err)
	assert.Equal(t, SchemeTrapezoidal, s.Name())
	assert.Equal(t, 4, s.NumGridPoints())

	// Every grid point is a mesh boundary.
	indicator := s.MeshIndicator()
	for i := 0; i < indicator.Len(); i++ {
		assert.Equal(t, 1., indicator.AtVec(i))
	}

	times := s.GridTimes()
	assert.InDeltaf(t, 1, times.AtVec(0), tol, "t0")
	assert.InDeltaf(t, 1.5, times.AtVec(1), tol, "breakpoint")
	assert.InDeltaf(t, 3, times.AtVec(3), tol, "tf")

	coeff := s.QuadratureCoefficients()
	assert.InDeltaf(t, 2, coeff.Sum(), tol, "quadrature partition")
	// First and last points carry half of their single interval.
	assert.InDeltaf(t, 0.25, coeff.AtVec(0), tol, "left end weight")
	assert.InDeltaf(t, 0.5, coeff.AtVec(3), tol, "right end weight")
}

func TestTrapezoidal_DefectsVanishForLinearTrajectory(t *testing.T) {
	const tol = 1e-12
	p := &Problem{
		NumStates:   2,
		TimeInitial: 0,
		TimeFinal:   2,
		Mesh:        []float64{0, 0.5, 0.75, 1},
	}
	s, err := New(p, Options{Scheme: SchemeTrapezoidal})
	assert.NoError(t, err)

	var (
		times = s.GridTimes()
		n     = s.NumGridPoints()
		x     = utils.NewMatrix(2, n)
		xdot  = utils.NewMatrix(2, n)
	)
	for i := 0; i < n; i++ {
		x.Set(0, i, 3*times.AtVec(i)+1)
		x.Set(1, i, -times.AtVec(i))
		xdot.Set(0, i, 3)
		xdot.Set(1, i, -1)
	}
	defects := s.CalcDefects(x, xdot)
	assert.Equal(t, 3*2, defects.Len())
	for k, val := range defects.DataP {
		assert.InDeltaf(t, 0, val, tol, "defect %d", k)
	}
}

func TestTrapezoidal_NoInterpolationConstraints(t *testing.T) {
	p := &Problem{
		NumStates:   1,
		NumControls: 3,
		TimeInitial: 0,
		TimeFinal:   1,
		Mesh:        []float64{0, 1},
	}
	s, err := New(p, Options{Scheme: SchemeTrapezoidal})
	assert.NoError(t, err)
	u := utils.NewMatrix(3, s.NumGridPoints())
	assert.Equal(t, 0, s.CalcInterpolatingControls(u).Len())
	assert.Equal(t, 0, s.CalcInterpolatingMultipliers(u).Len())
}
