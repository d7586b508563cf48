package store

import "errors"

// Sentinel errors returned by repositories to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no local row matches the lookup,
	// including a password that does not match the stored hash.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when a local row with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRemoteUserNotFound is returned when users/{key} holds no document.
	ErrRemoteUserNotFound = errors.New("remote user was not found")

	// ErrInvalidEmailKey is returned when an email cannot be turned into a
	// node key of the remote tree.
	ErrInvalidEmailKey = errors.New("email cannot be used as a remote key")

	// ErrFavoriteNotFound is returned when the user has no favorite with the
	// given recipe id.
	ErrFavoriteNotFound = errors.New("favorite was not found")

	// ErrEmptyPhoto is returned when an upload carries no bytes.
	ErrEmptyPhoto = errors.New("photo is empty")

	// ErrUnsupportedDSN is returned when the DSN names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level operation errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrRemoteRead is returned when reading from the remote tree fails.
	ErrRemoteRead = errors.New("error reading remote store")

	// ErrRemoteWrite is returned when writing to the remote tree fails.
	ErrRemoteWrite = errors.New("error writing remote store")

	// ErrDecodingDocument is returned when a remote node has an unexpected shape.
	ErrDecodingDocument = errors.New("error decoding remote document")

	// ErrPhotoUpload is returned when the blob store rejects an upload.
	ErrPhotoUpload = errors.New("error uploading photo")
)
