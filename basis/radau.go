package basis

import (
	"fmt"

	"github.com/trajopt/collo/utils"
)

// RadauPointsAndWeights computes the d right-Radau (Radau IIA) collocation
// points on (0,1] and the matching quadrature weights, exact for polynomials
// of degree 2d-2 on [0,1]. The right endpoint is always a collocation point;
// the d-1 interior points are the mapped roots of the Jacobi polynomial
// P_{d-1}^{(1,0)}.
func RadauPointsAndWeights(d int) (points, weights utils.Vector) {
	if d < 1 {
		panic(fmt.Errorf("radau rule undefined for degree %d", d))
	}
	points = utils.NewVector(d)
	weights = utils.NewVector(d)
	if d == 1 {
		points.DataP[0] = 1.
		weights.DataP[0] = 1.
		return
	}

	// Interior nodes and (1-x)-weighted Gauss weights on [-1,1].
	X, W := JacobiGQ(1, 0, d-2)
	for i := 0; i < d-1; i++ {
		x := X.AtVec(i)
		points.DataP[i] = (x + 1.) / 2.
		// Divide out the Jacobi weight, then halve for the [0,1] map.
		weights.DataP[i] = W.AtVec(i) / (1. - x) / 2.
	}
	points.DataP[d-1] = 1.
	weights.DataP[d-1] = 1. / float64(d*d) // 2/d^2 halved
	return
}

// InteriorPoints returns the d-1 Radau collocation fractions strictly inside
// (0,1), used as the interpolation abscissae for non-collocated variables.
func InteriorPoints(d int) (roots utils.Vector) {
	points, _ := RadauPointsAndWeights(d)
	roots = utils.NewVector(d - 1)
	copy(roots.DataP, points.DataP[:d-1])
	return
}

// LocalPoints returns the d+1 local grid fractions of one mesh interval:
// the left boundary 0 followed by the d collocation points.
func LocalPoints(d int) (tau utils.Vector) {
	points, _ := RadauPointsAndWeights(d)
	tau = utils.NewVector(d + 1)
	copy(tau.DataP[1:], points.DataP)
	return
}

// DifferentiationMatrix builds the fixed (d+1) x d operator D with
// D[j][k] = L_j'(tau_{k+1}), the derivative of the Lagrange basis over the
// d+1 local points evaluated at the k-th collocation point, so that for
// state samples X (numStates x (d+1)) the product X*D approximates dX/dtau
// at the collocation points. Built the Vandermonde way: D = (Vr * Vinv)^T,
// scaled by 2 for the [-1,1] -> [0,1] map.
func DifferentiationMatrix(d int) (D utils.Matrix) {
	var (
		tau = LocalPoints(d)
		r   = tau.Copy().Scale(2).AddScalar(-1) // local points on [-1,1]
		rc  = utils.NewVector(d, r.DataP[1:])   // collocation points only
	)
	V := Vandermonde1D(d, r)
	Vinv, err := V.Inverse()
	if err != nil {
		panic(err)
	}
	Vr := GradVandermonde1D(d, rc)
	D = Vr.Mul(Vinv).Transpose().Scale(2)
	return
}
