// Package groups lists running clubs and manages membership.
package groups
