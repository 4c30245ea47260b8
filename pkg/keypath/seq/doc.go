// Package seq is the sequential operation engine: single control flow,
// direct iteration, fully deterministic. It is the baseline the parallel and
// async engines are validated against.
//
// All operations read through an Accessor, preserve input order where the
// operation is order-bearing, and fail fast: the first required read that
// finds nothing aborts the call with ErrInvalidAccess and no partial result.
package seq
