package transcription

import (
	"fmt"

	"github.com/trajopt/collo/utils"
)

// Dynamics evaluates the continuous-time state derivative at one time sample.
// x has NumStates entries, u has NumControls entries, and the result is
// written into xdot (NumStates entries). Implementations must not retain the
// slices across calls.
type Dynamics func(t float64, x, u []float64, xdot []float64)

// Problem describes the continuous-time optimal-control problem to be
// transcribed: variable counts, the time horizon, the normalized mesh, and
// the dynamics.
type Problem struct {
	NumStates      int
	NumControls    int
	NumMultipliers int
	TimeInitial    float64
	TimeFinal      float64
	Mesh           []float64
	Dynamics       Dynamics
}

// Validate reports the construction-time configuration errors: a degenerate
// horizon, a mesh that is not strictly increasing, or mesh endpoints other
// than 0 and 1.
func (p *Problem) Validate() error {
	if p.NumStates < 1 {
		return fmt.Errorf("problem must have at least one state, have %d", p.NumStates)
	}
	if p.TimeFinal <= p.TimeInitial {
		return fmt.Errorf("time horizon is empty: [%g,%g]", p.TimeInitial, p.TimeFinal)
	}
	if len(p.Mesh) < 2 {
		return fmt.Errorf("mesh needs at least two breakpoints, have %d", len(p.Mesh))
	}
	if p.Mesh[0] != 0 || p.Mesh[len(p.Mesh)-1] != 1 {
		return fmt.Errorf("mesh endpoints must be 0 and 1, have [%g,%g]",
			p.Mesh[0], p.Mesh[len(p.Mesh)-1])
	}
	for i := 1; i < len(p.Mesh); i++ {
		if p.Mesh[i] <= p.Mesh[i-1] {
			return fmt.Errorf("mesh must be strictly increasing, mesh[%d]=%g <= mesh[%d]=%g",
				i, p.Mesh[i], i-1, p.Mesh[i-1])
		}
	}
	return nil
}

// NumMeshIntervals is the number of mesh intervals, len(Mesh)-1.
func (p *Problem) NumMeshIntervals() int { return len(p.Mesh) - 1 }

// EvaluateDynamics fills the NumStates x numGridPoints derivative matrix the
// defect engine consumes, calling the problem dynamics once per grid point.
// States x and controls u are laid out one column per grid point.
func (p *Problem) EvaluateDynamics(times utils.Vector, x, u utils.Matrix) (xdot utils.Matrix) {
	var (
		n    = times.Len()
		xCol = make([]float64, p.NumStates)
		uCol = make([]float64, p.NumControls)
		fCol = make([]float64, p.NumStates)
	)
	xdot = utils.NewMatrix(p.NumStates, n)
	for i := 0; i < n; i++ {
		for s := 0; s < p.NumStates; s++ {
			xCol[s] = x.At(s, i)
		}
		for c := 0; c < p.NumControls; c++ {
			uCol[c] = u.At(c, i)
		}
		p.Dynamics(times.AtVec(i), xCol, uCol, fCol)
		for s := 0; s < p.NumStates; s++ {
			xdot.Set(s, i, fCol[s])
		}
	}
	return
}
