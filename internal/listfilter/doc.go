// Package listfilter derives the visible subset of race and event listings.
//
// A listing is reduced by a chain of predicates, in this order:
//
//  1. location substring (case-insensitive)
//  2. country, derived from the location text
//  3. distance membership
//  4. start date on or after today (midnight-normalised)
//
// and the survivors are sorted by start date, ascending. Zero-valued
// criteria disable their predicate; all-zero criteria return the input
// unchanged. The input slice is never mutated.
package listfilter
