// Package http exposes the vessel and cargo use cases over a REST API built
// on echo. It owns request binding, bearer-token authentication, request-ID
// propagation, the error-to-status mapping, and the hypermedia links embedded
// in response bodies.
//
// Vessel routes and the assign/release routes require an authenticated
// principal; cargo routes are public. Every JSON error body carries the same
// shape: {"code": <status>, "message": <detail>}.
package http
