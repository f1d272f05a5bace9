// Package scalar defines the element contract consumed by the matrix engine
// and ships the three concrete wrappers the engine is most often used with:
//
//   - Real       – a float64 wrapper with stable ==/!= semantics
//   - Complex    – a+bi over float64, with Conj, Norm and a principal Sqrt
//   - Quaternion – w+xi+yj+zk with the Hamilton product
//
// The engine never touches raw machine numerics; every arithmetic step goes
// through the Scalar interface. Any type satisfying Scalar of itself — field
// operations, identities, equality, square root and a uniform-random draw —
// can be used as a matrix element.
//
// Invariant shared by all implementations: the Go zero value of the type IS
// the additive identity, so freshly allocated buffers are already zero-filled.
package scalar
