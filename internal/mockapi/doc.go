// Package mockapi is an in-memory implementation of the running-mate REST
// backend, used for local development (cmd/mockapi) and as the server side
// of the client's integration tests.
//
// It mirrors the endpoints the client consumes under /api/v1. State lives in
// memory and is lost on exit. Matching is a toy score on pace and shared
// distances; payments never leave the process. Errors use the body shape
// {"error": message, "code": code}.
package mockapi
