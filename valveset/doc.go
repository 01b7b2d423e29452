// Package valveset provides Set, a fixed-capacity bitmask set of valve ids.
//
// What
//
//   - Set records which of up to 64 valves have been opened.
//   - Membership test and insertion are O(1); cardinality is a popcount.
//   - Set is a plain value: assigning or passing it copies the whole set,
//     so every search branch owns an independent copy.
//
// Why
//
//   - Search engines copy their state once per branch. A single machine word
//     keeps that copy allocation-free and lets two sets be compared with ==.
//
// Errors
//
//   - ErrOutOfRange if an id outside [0, Capacity) is added.
//
// Usage
//
//	var opened valveset.Set
//	if err := opened.Add(3); err != nil {
//	    // id was outside [0, 64)
//	}
//	opened.Contains(3) // true
//	opened.Len()       // 1
package valveset
