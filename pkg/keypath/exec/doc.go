// Package exec selects an execution strategy at runtime and dispatches the
// operations whose results are guaranteed value-identical across strategies:
// Map, Filter, Find, Collect, Count, Any and All. All three strategies are
// always compiled in and chosen per call through a Strategy value; there are
// no build-time switches.
//
// The Sequential leg delegates to seq, the Async leg to a pull-based stream
// over the in-memory input, and the Parallel leg to the par engine through a
// transient pool sized by the Strategy's worker count. The par engine owns
// the chunking and gathering, so the deterministic lowest-chunk-index error
// selection holds here too: failures are reproducible across runs.
package exec
