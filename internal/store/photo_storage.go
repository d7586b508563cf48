package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// photoPrefix is the folder under which profile pictures are stored.
const photoPrefix = "profilePictures"

// allowedPhotoExt maps accepted content types to file extensions.
var allowedPhotoExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// photoObjectName returns a unique name for an uploaded photo, keeping the
// extension of the original file name when it has one.
func photoObjectName(originalName, contentType string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = allowedPhotoExt[contentType]
	}

	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), ext)
}

func publicPhotoURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + photoPrefix + "/" + name
}
