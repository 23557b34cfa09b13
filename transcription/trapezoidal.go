package transcription

import (
	"github.com/trajopt/collo/utils"
)

// Trapezoidal transcribes the problem with trapezoidal collocation: the grid
// is the mesh itself and every grid point is a mesh boundary. It exists
// alongside LGR behind the Scheme interface; it emits no interpolation
// constraints because every variable is collocated at every grid point.
type Trapezoidal struct {
	p *Problem

	times     utils.Vector
	quadCoeff utils.Vector
}

func newTrapezoidal(p *Problem) (*Trapezoidal, error) {
	tr := &Trapezoidal{p: p}
	var (
		t0   = p.TimeInitial
		span = p.TimeFinal - p.TimeInitial
		n    = tr.NumGridPoints()
	)
	tr.times = utils.NewVector(n)
	for i := 0; i < n; i++ {
		tr.times.DataP[i] = t0 + p.Mesh[i]*span
	}
	tr.quadCoeff = utils.NewVector(n)
	for imesh := 0; imesh < p.NumMeshIntervals(); imesh++ {
		h := tr.times.AtVec(imesh+1) - tr.times.AtVec(imesh)
		tr.quadCoeff.DataP[imesh] += h / 2
		tr.quadCoeff.DataP[imesh+1] += h / 2
	}
	return tr, nil
}

func (tr *Trapezoidal) Name() string { return SchemeTrapezoidal }

func (tr *Trapezoidal) NumGridPoints() int { return len(tr.p.Mesh) }

func (tr *Trapezoidal) GridTimes() utils.Vector { return tr.times.Copy() }

func (tr *Trapezoidal) MeshIndicator() utils.Vector {
	return utils.NewVector(tr.NumGridPoints()).Set(1)
}

func (tr *Trapezoidal) QuadratureCoefficients() utils.Vector { return tr.quadCoeff.Copy() }

// CalcDefects enforces, per interval, the trapezoid rule
// x_{i+1} - x_i - h/2*(f_i + f_{i+1}) = 0.
func (tr *Trapezoidal) CalcDefects(x, xdot utils.Matrix) (defects utils.Vector) {
	var (
		ns = tr.p.NumStates
		ni = tr.p.NumMeshIntervals()
	)
	checkSamples("state", x, ns, tr.NumGridPoints())
	checkSamples("state derivative", xdot, ns, tr.NumGridPoints())
	defects = utils.NewVector(ni * ns)
	for imesh := 0; imesh < ni; imesh++ {
		h := tr.times.AtVec(imesh+1) - tr.times.AtVec(imesh)
		for s := 0; s < ns; s++ {
			defects.DataP[imesh*ns+s] = x.At(s, imesh+1) - x.At(s, imesh) -
				h/2*(xdot.At(s, imesh)+xdot.At(s, imesh+1))
		}
	}
	return
}

func (tr *Trapezoidal) CalcInterpolatingControls(utils.Matrix) utils.Vector {
	return utils.NewVector(0)
}

func (tr *Trapezoidal) CalcInterpolatingMultipliers(utils.Matrix) utils.Vector {
	return utils.NewVector(0)
}
