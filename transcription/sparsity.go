package transcription

import (
	"github.com/james-bowman/sparse"
)

// DefectSparsity returns the structural nonzero pattern of the LGR defect
// residuals with respect to the state samples. Row r = imesh*d*ns + k*ns + s;
// column c = ipoint*ns + s'. Each residual couples to state s at every local
// grid point through the differentiation matrix, and to all states at its
// collocation point through the dynamics derivative.
func (l *LGR) DefectSparsity() *sparse.CSR {
	var (
		d    = l.degree
		ns   = l.p.NumStates
		ni   = l.p.NumMeshIntervals()
		rows = ni * d * ns
		cols = l.NumGridPoints() * ns
	)
	dok := sparse.NewDOK(rows, cols)
	for imesh := 0; imesh < ni; imesh++ {
		igrid := imesh * d
		for k := 0; k < d; k++ {
			for s := 0; s < ns; s++ {
				row := imesh*d*ns + k*ns + s
				for j := 0; j <= d; j++ {
					dok.Set(row, (igrid+j)*ns+s, 1)
				}
				for sp := 0; sp < ns; sp++ {
					dok.Set(row, (igrid+k+1)*ns+sp, 1)
				}
			}
		}
	}
	return dok.ToCSR()
}

// DefectSparsity for the trapezoidal scheme: residual r = imesh*ns + s
// couples to state s at both interval endpoints directly and to all states
// at both endpoints through the dynamics.
func (tr *Trapezoidal) DefectSparsity() *sparse.CSR {
	var (
		ns   = tr.p.NumStates
		ni   = tr.p.NumMeshIntervals()
		rows = ni * ns
		cols = tr.NumGridPoints() * ns
	)
	dok := sparse.NewDOK(rows, cols)
	for imesh := 0; imesh < ni; imesh++ {
		for s := 0; s < ns; s++ {
			row := imesh*ns + s
			for sp := 0; sp < ns; sp++ {
				dok.Set(row, imesh*ns+sp, 1)
				dok.Set(row, (imesh+1)*ns+sp, 1)
			}
		}
	}
	return dok.ToCSR()
}
