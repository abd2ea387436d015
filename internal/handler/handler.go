// Package handler is the HTTP layer. Handlers bind and validate requests,
// call the services and write their results as envelopes.
package handler
