// Package auth logs users in and out and keeps the session in secure
// storage.
//
// The bearer token is installed on the api client whenever a session is
// created or restored, so later calls are authenticated.
package auth
