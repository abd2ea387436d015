// Package errs define custom error types and utilities.
//
// Two families live here:
//   - HTTPError: framework-level failures (bad payloads, unknown routes,
//     panics) rendered by the global error handler with a real status code.
//   - ServiceError: business outcomes (not found, store failure) that the
//     handlers fold into the response envelope and always answer with 200.
package errs
