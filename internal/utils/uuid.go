package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewOrderedID returns a version 7 UUID. Its string form sorts by creation
// time, so document push keys keep insertion order.
func NewOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("error generating ordered id: %w", err)
	}

	return id.String(), nil
}

// NewTraceID returns a random id used to correlate log lines of one call.
func NewTraceID() string {
	return uuid.NewString()
}
