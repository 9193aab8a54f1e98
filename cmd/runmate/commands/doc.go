// Package commands defines the runmate CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login, logout, whoami   Manage the stored session
//   - signup                  Create an account with the resumable wizard
//   - home                    Dashboard: top matches, inbox, upcoming events
//   - races, events           Filtered listings; event participation
//   - groups                  Running clubs
//   - matches                 Suggested partners; interactive deck
//   - messages, unread        Inbox and threads
//   - search                  Find runners; interactive when no query is given
//   - profile                 Show or edit your profile
//   - billing                 Plans and subscription
//   - notifications           Push-token registration
//
// # Implementation
//
// The root command loads the config (file, .env, environment, flags), builds
// the logger and the dependency graph (encrypted stores, api client,
// services) before any subcommand runs. Commands that need an account
// restore the stored session first, which installs the bearer token.
package commands
