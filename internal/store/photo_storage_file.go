package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// filePhotoStorage writes profile pictures into a local directory that the
// HTTP server exposes under /profilePictures/.
type filePhotoStorage struct {
	dir       string
	publicURL string
	now       func() time.Time
	logger    *logger.Logger
}

// NewFilePhotoStorage creates dir if needed. publicURL is the external base
// URL of the server and may be empty for relative links.
func NewFilePhotoStorage(dir, publicURL string, log *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("created file photo storage")
	return &filePhotoStorage{
		dir:       dir,
		publicURL: publicURL,
		now:       time.Now,
		logger:    log,
	}, nil
}

func (s *filePhotoStorage) UploadPhoto(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	objectName := photoObjectName(name, contentType, s.now())
	path := filepath.Join(s.dir, objectName)

	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "*filePhotoStorage.UploadPhoto").Msg("error creating photo file")
		return "", wrapErr(ErrPhotoUpload, err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && n == 0 {
		err = ErrEmptyPhoto
	}
	if err != nil {
		_ = os.Remove(path)
		log.Err(err).Str("func", "*filePhotoStorage.UploadPhoto").Msg("error writing photo file")
		if errors.Is(err, ErrEmptyPhoto) {
			return "", err
		}
		return "", wrapErr(ErrPhotoUpload, err)
	}

	return publicPhotoURL(s.publicURL, objectName), nil
}

