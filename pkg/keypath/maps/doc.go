// Package maps extends the operation engine to associative containers:
// transforming and filtering map values through an accessor. Go has a single
// map type, so ordered-map flavors are expressed with the SortedKeys helper
// instead of a separate container.
package maps
