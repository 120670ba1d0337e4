// Package http implements the HTTP transport layer of the auctions API.
//
// It exposes route wiring, request handlers, and middleware. Every request
// runs inside a request scope opened by withRequestContext, which binds the
// current user and correlation id to the request context and stamps the
// X-Process-Time and X-Correlation-ID headers. Handlers return errors; the
// error translator turns them into JSON bodies of the form
// {"message": "..."} with a status derived from the failure kind.
package http
