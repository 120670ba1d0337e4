// Package domain holds the failure taxonomy shared by the business layers of
// the auctions API.
//
// Business code reports problems by returning a [*Failure]. The HTTP
// transport is the only place where failures are turned into responses, so
// services and repositories never import transport packages.
package domain
