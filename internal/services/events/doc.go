// Package events lists races and community events through the list filter
// pipeline and manages event participation.
package events
