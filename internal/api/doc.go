// Package api handles incoming HTTP requests for services, reviews, users
// and auth cookies. Handlers decode and validate requests, perform one
// store operation each, and translate store and auth errors to HTTP
// responses through HandleAPIError.
package api
