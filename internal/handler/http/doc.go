// Package http implements the REST API of the recipe keeper.
//
// It wires the chi router, the request handlers and the middleware chain.
// Request tracing, access logging, response compression and token
// authentication happen here before requests reach the service layer; the
// admin user list is additionally pushed to clients over a websocket.
package http
