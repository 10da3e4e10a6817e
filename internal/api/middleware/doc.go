// Package middleware holds the cross-cutting HTTP middleware mounted in front
// of every route: trace IDs with a request-scoped logger, request logging,
// panic recovery, CORS and per-client rate limiting.
package middleware
