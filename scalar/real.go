// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/rand"
)

// Real is a float64-backed matrix element.
// It exists so real-valued matrices speak the same Scalar contract as
// Complex and Quaternion ones; the compiler erases the wrapper entirely.
type Real float64

// Zero returns the additive identity 0.
// Complexity: O(1).
func (x Real) Zero() Real { return 0 }

// One returns the multiplicative identity 1.
// Complexity: O(1).
func (x Real) One() Real { return 1 }

// Add returns x + y.
func (x Real) Add(y Real) Real { return x + y }

// Sub returns x - y.
func (x Real) Sub(y Real) Real { return x - y }

// Mul returns x * y.
func (x Real) Mul(y Real) Real { return x * y }

// Div returns x / y (IEEE-754 semantics on y == 0).
func (x Real) Div(y Real) Real { return x / y }

// Neg returns -x.
func (x Real) Neg() Real { return -x }

// Equal reports exact equality with y.
func (x Real) Equal(y Real) bool { return x == y }

// Sqrt returns the principal square root of x (NaN for negative x,
// mirroring math.Sqrt).
func (x Real) Sqrt() Real { return Real(math.Sqrt(float64(x))) }

// Uniform draws uniformly from [lo, hi).
func (x Real) Uniform(r *rand.Rand, lo, hi Real) Real {
	return lo + Real(r.Float64())*(hi-lo)
}

// Float64 unwraps the value for interop with float64-based APIs.
func (x Real) Float64() float64 { return float64(x) }
