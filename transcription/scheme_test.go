package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProblem() *Problem {
	return &Problem{
		NumStates:   1,
		TimeInitial: 0,
		TimeFinal:   1,
		Mesh:        []float64{0, 0.5, 1},
	}
}

func TestNew_SchemeSelection(t *testing.T) {
	s, err := New(validProblem(), Options{Scheme: SchemeLGR, Degree: 3})
	assert.NoError(t, err)
	assert.Equal(t, SchemeLGR, s.Name())
	assert.IsType(t, &LGR{}, s)

	s, err = New(validProblem(), Options{Scheme: SchemeTrapezoidal})
	assert.NoError(t, err)
	assert.IsType(t, &Trapezoidal{}, s)

	// LGR is the default.
	s, err = New(validProblem(), Options{Degree: 2})
	assert.NoError(t, err)
	assert.Equal(t, SchemeLGR, s.Name())

	_, err = New(validProblem(), Options{Scheme: "hermite-simpson"})
	assert.Error(t, err)
}

func TestNew_ConfigurationErrors(t *testing.T) {
	// Degree below 1.
	_, err := New(validProblem(), Options{Scheme: SchemeLGR, Degree: 0})
	assert.Error(t, err)

	// Mesh not strictly increasing.
	p := validProblem()
	p.Mesh = []float64{0, 0.5, 0.25, 1}
	_, err = New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.Error(t, err)

	// Repeated breakpoint.
	p = validProblem()
	p.Mesh = []float64{0, 0.5, 0.5, 1}
	_, err = New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.Error(t, err)

	// Endpoints not {0,1}.
	p = validProblem()
	p.Mesh = []float64{0.1, 0.5, 1}
	_, err = New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.Error(t, err)
	p = validProblem()
	p.Mesh = []float64{0, 0.5, 0.9}
	_, err = New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.Error(t, err)

	// Empty horizon.
	p = validProblem()
	p.TimeFinal = p.TimeInitial
	_, err = New(p, Options{Scheme: SchemeLGR, Degree: 3})
	assert.Error(t, err)
}
