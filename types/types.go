// Package types defines small shared constraints and enums used across this
// module: the numeric type set generic geometry code is parameterized over,
// and the three-way orientation result computational-geometry predicates
// return.
package types
