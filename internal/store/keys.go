package store

import (
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
)

const (
	usersPath     = "users"
	favoritesPath = "favorites"
	commentsPath  = "comments"
)

// EmailKey turns an email into the key of its users/ node. Dots are not
// allowed in keys, so they become commas.
func EmailKey(email string) (string, error) {
	key := strings.ReplaceAll(strings.TrimSpace(email), ".", ",")
	if _, err := docstore.Join(key); err != nil {
		return "", ErrInvalidEmailKey
	}

	return key, nil
}
