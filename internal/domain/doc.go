// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state), contracts (interfaces) and the typed
// error kinds returned at the network boundary.
package domain
