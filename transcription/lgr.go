package transcription

import (
	"fmt"

	"github.com/trajopt/collo/basis"
	"github.com/trajopt/collo/utils"
)

// LGR transcribes the problem with Legendre-Gauss-Radau orthogonal
// collocation: per mesh interval, one left boundary point plus degree
// collocation points, the last of which coincides with the right mesh
// boundary. The coefficient tables and grid geometry are computed once here
// and never mutated.
type LGR struct {
	p      *Problem
	degree int
	opts   Options

	times     utils.Vector // absolute grid times
	indicator utils.Vector
	quadCoeff utils.Vector
	diffMat   utils.Matrix // (degree+1) x degree
	interior  utils.Vector // degree-1 interpolation fractions in (0,1)
}

func newLGR(p *Problem, opts Options) (*LGR, error) {
	if opts.Degree < 1 {
		return nil, fmt.Errorf("collocation degree must be >= 1, have %d", opts.Degree)
	}
	l := &LGR{
		p:      p,
		degree: opts.Degree,
		opts:   opts,
	}
	l.buildGrid()
	l.buildMeshIndicator()
	l.buildQuadratureCoefficients()
	l.diffMat = basis.DifferentiationMatrix(l.degree)
	l.interior = basis.InteriorPoints(l.degree)
	return l, nil
}

func (l *LGR) Name() string { return SchemeLGR }

func (l *LGR) NumGridPoints() int { return l.p.NumMeshIntervals()*l.degree + 1 }

// buildGrid scales the degree-fixed local fractions of every mesh interval
// into absolute time. Each mesh boundary is written once: as the last
// collocation point of the interval to its left.
func (l *LGR) buildGrid() {
	var (
		d    = l.degree
		t0   = l.p.TimeInitial
		span = l.p.TimeFinal - l.p.TimeInitial
		tau  = basis.LocalPoints(d)
	)
	l.times = utils.NewVector(l.NumGridPoints())
	l.times.DataP[0] = t0
	for imesh := 0; imesh < l.p.NumMeshIntervals(); imesh++ {
		ta := t0 + l.p.Mesh[imesh]*span
		tb := t0 + l.p.Mesh[imesh+1]*span
		for k := 1; k <= d; k++ {
			l.times.DataP[imesh*d+k] = ta + tau.AtVec(k)*(tb-ta)
		}
	}
}

func (l *LGR) buildMeshIndicator() {
	l.indicator = utils.NewVector(l.NumGridPoints())
	for imesh := 0; imesh <= l.p.NumMeshIntervals(); imesh++ {
		l.indicator.DataP[imesh*l.degree] = 1
	}
}

// buildQuadratureCoefficients spreads the per-degree Radau weights, scaled by
// each interval duration, over the global grid. Weights attach only to
// collocation points, so the first grid point keeps weight zero and no point
// is written by more than one interval.
func (l *LGR) buildQuadratureCoefficients() {
	var (
		d    = l.degree
		_, w = basis.RadauPointsAndWeights(d)
	)
	l.quadCoeff = utils.NewVector(l.NumGridPoints())
	for imesh := 0; imesh < l.p.NumMeshIntervals(); imesh++ {
		igrid := imesh * d
		h := l.times.AtVec(igrid+d) - l.times.AtVec(igrid)
		for k := 0; k < d; k++ {
			l.quadCoeff.DataP[igrid+k+1] += w.AtVec(k) * h
		}
	}
}

func (l *LGR) GridTimes() utils.Vector              { return l.times.Copy() }
func (l *LGR) MeshIndicator() utils.Vector          { return l.indicator.Copy() }
func (l *LGR) QuadratureCoefficients() utils.Vector { return l.quadCoeff.Copy() }

// DifferentiationMatrix exposes the fixed local differentiation operator.
func (l *LGR) DifferentiationMatrix() utils.Matrix { return l.diffMat.Copy() }

// InterpolationPoints exposes the interior collocation fractions used by the
// interpolation constraints.
func (l *LGR) InterpolationPoints() utils.Vector { return l.interior.Copy() }

// CalcDefects builds, per interval, the residual h*xdot_c - x_local*D and
// stacks the numStates x degree blocks interval-major into one vector.
func (l *LGR) CalcDefects(x, xdot utils.Matrix) (defects utils.Vector) {
	var (
		d  = l.degree
		ns = l.p.NumStates
		ni = l.p.NumMeshIntervals()
	)
	checkSamples("state", x, ns, l.NumGridPoints())
	checkSamples("state derivative", xdot, ns, l.NumGridPoints())
	defects = utils.NewVector(ni * d * ns)
	for imesh := 0; imesh < ni; imesh++ {
		igrid := imesh * d
		h := l.times.AtVec(igrid+d) - l.times.AtVec(igrid)
		xLocal := x.SliceCols(igrid, igrid+d+1)
		xD := xLocal.Mul(l.diffMat)
		for k := 0; k < d; k++ {
			for s := 0; s < ns; s++ {
				defects.DataP[imesh*d*ns+k*ns+s] =
					h*xdot.At(s, igrid+k+1) - xD.At(s, k)
			}
		}
	}
	return
}

func (l *LGR) CalcInterpolatingControls(u utils.Matrix) utils.Vector {
	if l.p.NumControls == 0 || !l.opts.InterpolateControlMidpoints {
		return utils.NewVector(0)
	}
	checkSamples("control", u, l.p.NumControls, l.NumGridPoints())
	return l.calcInterpolatingVariables(u, l.p.NumControls)
}

func (l *LGR) CalcInterpolatingMultipliers(lam utils.Matrix) utils.Vector {
	if l.p.NumMultipliers == 0 || !l.opts.InterpolateMultiplierMidpoints {
		return utils.NewVector(0)
	}
	checkSamples("multiplier", lam, l.p.NumMultipliers, l.NumGridPoints())
	return l.calcInterpolatingVariables(lam, l.p.NumMultipliers)
}

// calcInterpolatingVariables forces each interior sample onto the straight
// line between the interval boundary samples.
func (l *LGR) calcInterpolatingVariables(v utils.Matrix, nv int) (residuals utils.Vector) {
	var (
		d  = l.degree
		ni = l.p.NumMeshIntervals()
	)
	residuals = utils.NewVector(ni * (d - 1) * nv)
	for imesh := 0; imesh < ni; imesh++ {
		igrid := imesh * d
		for k := 0; k < d-1; k++ {
			root := l.interior.AtVec(k)
			for j := 0; j < nv; j++ {
				left := v.At(j, igrid)
				right := v.At(j, igrid+d)
				actual := v.At(j, igrid+k+1)
				residuals.DataP[imesh*(d-1)*nv+k*nv+j] =
					actual - (left + root*(right-left))
			}
		}
	}
	return
}

func checkSamples(what string, m utils.Matrix, nr, nc int) {
	r, c := m.Dims()
	if r != nr || c != nc {
		panic(fmt.Errorf("%s samples must be %dx%d, have %dx%d", what, nr, nc, r, c))
	}
}
