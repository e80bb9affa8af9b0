// Package uploads stores gallery images on disk. Files are keyed by a
// generated identifier, never by the client-supplied filename, which is kept
// only as metadata.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrNotImage indicates the payload did not decode as a supported image.
var ErrNotImage = errors.New("payload is not a supported image")

const thumbWidth = 480

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Store writes originals and thumbnails under Dir and exposes them at
// PublicPrefix.
type Store struct {
	Dir          string
	PublicPrefix string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &Store{Dir: dir, PublicPrefix: "/static/uploads"}, nil
}

// SavedImage describes a stored upload.
type SavedImage struct {
	// Key is the generated storage filename (uuid + extension).
	Key string
	// Path and ThumbPath are the public URL paths of the original and the
	// thumbnail variant.
	Path      string
	ThumbPath string
}

// Save decodes the payload, writes the original and a thumbnail variant, and
// returns their public paths. The original filename only contributes its
// extension. Returns ErrNotImage for payloads that do not decode.
func (s *Store) Save(originalName string, payload io.Reader) (SavedImage, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return SavedImage{}, ErrNotImage
	}

	img, err := imaging.Decode(payload)
	if err != nil {
		return SavedImage{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	key := uuid.New().String() + ext
	filePath := filepath.Join(s.Dir, key)
	if err := imaging.Save(img, filePath); err != nil {
		return SavedImage{}, fmt.Errorf("write image: %w", err)
	}

	thumbKey := thumbName(key)
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.Dir, thumbKey)); err != nil {
		// Keep the pair atomic: a half-written upload is removed.
		os.Remove(filePath)
		return SavedImage{}, fmt.Errorf("write thumbnail: %w", err)
	}

	return SavedImage{
		Key:       key,
		Path:      path.Join(s.PublicPrefix, key),
		ThumbPath: path.Join(s.PublicPrefix, thumbKey),
	}, nil
}

// Remove deletes a stored image and its thumbnail. Used as compensating
// cleanup when the database insert fails after the file write succeeded.
func (s *Store) Remove(key string) error {
	var errs []error
	if err := os.Remove(filepath.Join(s.Dir, key)); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if err := os.Remove(filepath.Join(s.Dir, thumbName(key))); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func thumbName(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}
