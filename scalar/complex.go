// SPDX-License-Identifier: MIT

package scalar

import (
	"math/cmplx"
	"math/rand"
)

// Complex is a matrix element of the form Re + Im·i where i = sqrt(-1).
// The zero value is the additive identity (package invariant).
type Complex struct {
	Re float64 // real component
	Im float64 // imaginary component
}

// complexOf is a convenience constructor used by the arithmetic methods.
func complexOf(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// c128 converts to the built-in complex128 for delegation to math/cmplx.
func (x Complex) c128() complex128 { return complex(x.Re, x.Im) }

// Zero returns 0 + 0i.
func (x Complex) Zero() Complex { return Complex{} }

// One returns 1 + 0i.
func (x Complex) One() Complex { return Complex{Re: 1} }

// Add returns x + y component-wise.
func (x Complex) Add(y Complex) Complex { return Complex{Re: x.Re + y.Re, Im: x.Im + y.Im} }

// Sub returns x - y component-wise.
func (x Complex) Sub(y Complex) Complex { return Complex{Re: x.Re - y.Re, Im: x.Im - y.Im} }

// Mul returns the complex product x * y.
func (x Complex) Mul(y Complex) Complex { return complexOf(x.c128() * y.c128()) }

// Div returns the complex quotient x / y.
func (x Complex) Div(y Complex) Complex { return complexOf(x.c128() / y.c128()) }

// Neg returns -x.
func (x Complex) Neg() Complex { return Complex{Re: -x.Re, Im: -x.Im} }

// Equal reports exact component-wise equality with y.
func (x Complex) Equal(y Complex) bool { return x.Re == y.Re && x.Im == y.Im }

// Sqrt returns the principal complex square root of x.
func (x Complex) Sqrt() Complex { return complexOf(cmplx.Sqrt(x.c128())) }

// Uniform draws both components independently: Re from [lo.Re, hi.Re),
// Im from [lo.Im, hi.Im).
func (x Complex) Uniform(r *rand.Rand, lo, hi Complex) Complex {
	return Complex{
		Re: lo.Re + r.Float64()*(hi.Re-lo.Re),
		Im: lo.Im + r.Float64()*(hi.Im-lo.Im),
	}
}

// Conj returns the complex conjugate Re - Im·i.
func (x Complex) Conj() Complex { return Complex{Re: x.Re, Im: -x.Im} }

// Norm returns the modulus |x| = sqrt(Re² + Im²).
func (x Complex) Norm() float64 { return cmplx.Abs(x.c128()) }
