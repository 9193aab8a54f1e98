// Package api provides the HTTP implementation of domain.APIClient used by
// runmate to talk to the running-mate backend.
//
// All requests are JSON over HTTP, carry the bearer token once logged in,
// accept a context for cancellation and deadlines, and pass through a token
// bucket limiter so no command can flood the backend. Every failure comes
// back as a *domain.APIError: transport failures are KindNetwork and non-2xx
// statuses are classified by domain.KindForStatus, keeping the backend's
// {"error","code"} body when it sends one. Nothing is retried.
package api
