// Package middleware holds the global and route middleware: request ids,
// request-scoped logging, New Relic tracing, rate limiting, Clerk
// authentication, panic recovery and the global error handler.
package middleware
