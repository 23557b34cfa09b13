// Package transcription turns a continuous-time optimal-control problem into
// the structural data of a finite nonlinear program: grid geometry,
// quadrature coefficients, and defect and interpolation residuals. The
// structural tables are built once at construction and are read-only
// afterwards, so a Scheme is safe for concurrent constraint evaluation.
package transcription

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/trajopt/collo/utils"
)

// Scheme identifiers accepted by New.
const (
	SchemeLGR         = "legendre-gauss-radau"
	SchemeTrapezoidal = "trapezoidal"
)

// Options selects the transcription scheme and its tunables at configuration
// time. The interpolation flags gate the midpoint constraints per variable
// class; when a flag is off the matching residual vector is empty.
type Options struct {
	Scheme                         string
	Degree                         int
	InterpolateControlMidpoints    bool
	InterpolateMultiplierMidpoints bool
}

// Scheme is one transcription of the continuous problem. All returned
// vectors and matrices are freshly allocated; callers own them.
type Scheme interface {
	Name() string
	NumGridPoints() int
	// GridTimes returns the absolute time of every grid point. The
	// normalized mesh is scaled into [TimeInitial,TimeFinal] exactly once,
	// here; quadrature and defect assembly read absolute times from this
	// grid.
	GridTimes() utils.Vector
	// MeshIndicator is 1 at grid points that are mesh-interval boundaries
	// and 0 elsewhere.
	MeshIndicator() utils.Vector
	// QuadratureCoefficients assigns each grid point its weight for
	// integrating a sampled function over the full horizon.
	QuadratureCoefficients() utils.Vector
	// CalcDefects computes the dynamic-feasibility residuals from state
	// samples x and dynamics derivative samples xdot, both laid out
	// numStates x numGridPoints. Nonzero residuals are NLP infeasibility
	// signals, never errors.
	CalcDefects(x, xdot utils.Matrix) utils.Vector
	// CalcInterpolatingControls and CalcInterpolatingMultipliers force
	// non-collocated interior samples onto the line between interval
	// boundary values; both return an empty vector when gated off.
	CalcInterpolatingControls(u utils.Matrix) utils.Vector
	CalcInterpolatingMultipliers(lam utils.Matrix) utils.Vector
	// DefectSparsity is the structural nonzero pattern of the defect
	// residuals with respect to the state samples (column index
	// ipoint*numStates + istate).
	DefectSparsity() *sparse.CSR
}

// New builds the scheme named by opts for the given problem. Configuration
// errors (unknown scheme, bad degree, bad mesh) are fatal and reported
// immediately.
func New(p *Problem, opts Options) (Scheme, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch opts.Scheme {
	case SchemeLGR, "":
		return newLGR(p, opts)
	case SchemeTrapezoidal:
		return newTrapezoidal(p)
	default:
		return nil, fmt.Errorf("unknown transcription scheme %q", opts.Scheme)
	}
}
