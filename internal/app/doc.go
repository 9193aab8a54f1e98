// Package app wires application dependencies for the CLI.
//
// It loads Config (YAML file, .env and environment overrides), builds the
// encrypted stores, the api client and the high-level services, and exposes
// them via App for commands to use.
package app
