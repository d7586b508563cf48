package docstore

import (
	"fmt"
	"strings"
)

// forbiddenKeyChars cannot appear in a key of the remote tree.
const forbiddenKeyChars = ".$#[]"

// Join builds a path from keys, rejecting keys that are empty or contain
// forbidden characters.
func Join(keys ...string) (string, error) {
	for _, k := range keys {
		if k == "" || strings.ContainsAny(k, forbiddenKeyChars+"/") {
			return "", fmt.Errorf("%w: key %q", ErrInvalidPath, k)
		}
	}

	return strings.Join(keys, "/"), nil
}

func splitPath(path string) ([]string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(trimmed, "/")
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, forbiddenKeyChars) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return parts, nil
}
