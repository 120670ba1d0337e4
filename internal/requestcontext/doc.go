// Package requestcontext manages the per-request ambient state of the
// auctions API: the current user, the correlation id and the moment the
// request started.
//
// State lives in the request's [context.Context], never in package globals,
// so concurrently handled requests cannot observe each other. A scope is
// opened with [Manager.BeginRequest] and released with [Manager.EndRequest];
// callers defer the release so it runs on every exit path.
package requestcontext
