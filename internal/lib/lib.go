// Package lib groups the supporting libraries that do not belong to a layer:
// background job processing on Redis/Asynq and the Resend email client.
package lib
