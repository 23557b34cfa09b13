package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	data := []byte(`
Title: "Pendulum swing-up"
Scheme: legendre-gauss-radau
Degree: 3
Mesh: [0, 0.25, 0.5, 1]
TimeInitial: 0
TimeFinal: 2.5
NumStates: 2
NumControls: 1
NumMultipliers: 0
InterpolateControlMidpoints: true
InterpolateMultiplierMidpoints: false
`)
	tp := &TranscriptionParameters{}
	err := tp.Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, "Pendulum swing-up", tp.Title)
	assert.Equal(t, "legendre-gauss-radau", tp.Scheme)
	assert.Equal(t, 3, tp.Degree)
	assert.Equal(t, []float64{0, 0.25, 0.5, 1}, tp.Mesh)
	assert.Equal(t, 2.5, tp.TimeFinal)
	assert.Equal(t, 2, tp.NumStates)
	assert.Equal(t, 1, tp.NumControls)
	assert.True(t, tp.InterpolateControlMidpoints)
	assert.False(t, tp.InterpolateMultiplierMidpoints)
}

func TestParseBadYAML(t *testing.T) {
	tp := &TranscriptionParameters{}
	assert.Error(t, tp.Parse([]byte("Degree: [not an int")))
}
