// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/rand"
)

// Quaternion is a matrix element of the form W + X·i + Y·j + Z·k.
// Multiplication is the Hamilton product and is NOT commutative; the
// elimination engine only ever multiplies by scalars it derived from the
// same side, so the usual left-division convention below is sufficient.
// The zero value is the additive identity (package invariant).
type Quaternion struct {
	W float64 // real component
	X float64 // i component
	Y float64 // j component
	Z float64 // k component
}

// Zero returns the zero quaternion.
func (q Quaternion) Zero() Quaternion { return Quaternion{} }

// One returns the identity quaternion 1.
func (q Quaternion) One() Quaternion { return Quaternion{W: 1} }

// Add returns q + p component-wise.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{W: q.W + p.W, X: q.X + p.X, Y: q.Y + p.Y, Z: q.Z + p.Z}
}

// Sub returns q - p component-wise.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{W: q.W - p.W, X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z}
}

// Mul returns the Hamilton product q * p.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Div returns q * p⁻¹ where p⁻¹ = Conj(p) / |p|².
func (q Quaternion) Div(p Quaternion) Quaternion {
	n2 := p.W*p.W + p.X*p.X + p.Y*p.Y + p.Z*p.Z
	inv := Quaternion{W: p.W / n2, X: -p.X / n2, Y: -p.Y / n2, Z: -p.Z / n2}

	return q.Mul(inv)
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Equal reports exact component-wise equality with p.
func (q Quaternion) Equal(p Quaternion) bool {
	return q.W == p.W && q.X == p.X && q.Y == p.Y && q.Z == p.Z
}

// Sqrt returns a principal square root of q: the root with a non-negative
// real part whose vector part is parallel to q's. A negative real q has no
// distinguished vector axis; the i axis is chosen by convention.
func (q Quaternion) Sqrt() Quaternion {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}
	}
	vn := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if vn == 0 {
		if q.W >= 0 {
			return Quaternion{W: math.Sqrt(q.W)}
		}

		return Quaternion{X: math.Sqrt(-q.W)} // conventional axis for negative reals
	}
	root := math.Sqrt(n)
	half := math.Acos(q.W/n) / 2
	s := root * math.Sin(half) / vn

	return Quaternion{W: root * math.Cos(half), X: s * q.X, Y: s * q.Y, Z: s * q.Z}
}

// Uniform draws all four components independently from the corresponding
// component intervals [lo.C, hi.C).
func (q Quaternion) Uniform(r *rand.Rand, lo, hi Quaternion) Quaternion {
	return Quaternion{
		W: lo.W + r.Float64()*(hi.W-lo.W),
		X: lo.X + r.Float64()*(hi.X-lo.X),
		Y: lo.Y + r.Float64()*(hi.Y-lo.Y),
		Z: lo.Z + r.Float64()*(hi.Z-lo.Z),
	}
}

// Conj returns the conjugate W - X·i - Y·j - Z·k.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Norm returns |q| = sqrt(W² + X² + Y² + Z²).
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}
