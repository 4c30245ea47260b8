// Package keypath provides typed, composable field accessors (paths) and the
// shared result/error model used by the operation engines in the subpackages.
//
// A Path[S, T] describes how to reach a value of type T inside a value of
// type S. Paths are pure, immutable and safe to share between goroutines.
// Absence of a value is a first-class outcome (the ok flag), not an error;
// the engines convert absence into ErrInvalidAccess only where an operation
// requires presence.
//
// Key pieces:
// - New/Field/NewFull: construct paths from getter (and optional writer) funcs
// - Then: compose two paths; composition is associative and short-circuits
// - Identity/Index/Key/As: common ready-made paths
// - Accessor/MutAccessor: the contract code-generated accessors must satisfy
// - Result[T]: success/failure/cancel carrier used by the pipe subpackage
// - ErrInvalidAccess and friends: the closed error vocabulary of this module
package keypath
