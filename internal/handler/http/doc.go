// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, panic recovery, compression and CORS are handled in this package
// before requests are delegated to the service layer. Every error response
// is produced by the mapping in errors_mapper.go.
package http
