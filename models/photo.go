package models

import "io"

// Photo is an uploaded profile picture on its way to the blob store.
type Photo struct {
	// Name is the client-side file name; only its extension is kept.
	Name        string
	ContentType string
	Content     io.Reader
}
