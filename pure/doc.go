// Package pure provides single-slot memoization for pure functions.
//
// Memoize is deliberately shallow. It remembers only the last call and
// compares arguments with ==, so it only helps when the exact same
// argument recurs on consecutive calls:
//
//	nameBox := pure.MemoizeI1O1(view.NameBox)
//	nameBox("yamada tarou") // computed
//	nameBox("yamada tarou") // remembered
//	nameBox("suzuki ichiro") // computed, evicts "yamada tarou"
//
// Do not turn it into a deep-equality or multi-entry cache. Callers rely
// on the depth of one and on identity comparison.
//
// Memoized functions must be referentially transparent: the same argument
// must always yield the same result. Functions depending on time, I/O or
// mutable state must not be memoized.
package pure
