// Package server runs the recipe-keeper REST API and the gRPC health
// endpoint side by side and stops both on SIGTERM, SIGINT or SIGQUIT.
package server
