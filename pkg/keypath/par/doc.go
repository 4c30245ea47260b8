// Package par is the parallel operation engine. A fixed-size Pool of worker
// goroutines processes private chunks of the input; results land in
// index-addressed slots and are merged at a single gather point after all
// workers finish, so order-bearing operations reassemble by original index,
// never by completion order.
//
// Error semantics are deterministic: when several chunks fail, the error of
// the chunk with the lowest start index wins, regardless of which worker
// finished first. Context expiry surfaces as ErrParallel wrapping ctx.Err().
//
// Fold is only offered in a two-phase form whose cross-chunk combine
// function the caller must supply; doing so is the caller's assertion that
// the reduction is associative and commutative.
package par
