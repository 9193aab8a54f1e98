// Package main runs the in-memory runmate backend used during development
// and by the CLI's integration tests. It serves the same REST surface the
// real backend exposes under /api/v1.
//
// HTTP API
//
//	POST /api/v1/auth/login | /auth/register
//	GET|PUT /api/v1/users/me, GET /api/v1/users/search?q=
//	GET /api/v1/matches, POST /api/v1/matches/{id}/like|pass
//	GET /api/v1/conversations, GET|POST /api/v1/conversations/{id}/messages
//	POST /api/v1/conversations/{id}/read
//	GET /api/v1/races[/{id}]
//	GET|POST /api/v1/events, GET /api/v1/events/{id}, POST .../join|leave
//	GET|POST /api/v1/groups, GET /api/v1/groups/{id}, POST .../join|leave
//	GET /api/v1/payments/plans, POST /api/v1/payments/subscribe
//	GET|DELETE /api/v1/payments/subscription
//	POST /api/v1/notifications/register
//	GET /health
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - With --seed (the default) four demo runners exist, all with password
//     "password123": ana@, ben@, chloe@ and dev@example.com.
//   - Errors are JSON {"error": message, "code": code} with a matching status.
//   - Every request is access-logged through zap.
//   - The default listen address is :8080.
package main
