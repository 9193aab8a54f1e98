// Package matching lists suggested running partners and records like/pass
// decisions.
package matching
