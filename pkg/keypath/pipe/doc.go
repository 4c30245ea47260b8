// Package pipe is the composition layer: plain function piping, conditional
// per-element application, and a fluent Chain builder over whole collections.
//
// Chain wraps a Result[[]S] with a context, short-circuiting on the first
// failure like the rest of the module, and offers opt-in zerolog stage
// tracing as a side effect that never alters the result. Steps that change
// the element type are package-level functions, since Go methods cannot
// introduce type parameters.
package pipe
