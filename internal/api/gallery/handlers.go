// internal/api/gallery/handlers.go
package gallery

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fixfirst/fixfirst/internal/api/apiutil"
	"github.com/fixfirst/fixfirst/internal/db"
	pagestempl "github.com/fixfirst/fixfirst/internal/templates/pages"
	"github.com/fixfirst/fixfirst/internal/uploads"
)

const (
	queryTimeout  = 5 * time.Second
	maxUploadSize = 10 << 20 // 10 MiB
)

var (
	database *db.DB
	store    *uploads.Store
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(d *db.DB, s *uploads.Store) {
	database = d
	store = s
}

// GET /
func HandleHomePage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	photos, err := database.ListPhotos(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list photos")
		http.Error(w, "Failed to load gallery", http.StatusInternalServerError)
		return
	}

	page := pagestempl.Layout("FixFirst Appliance Repair", pagestempl.Gallery(photos))
	apiutil.RenderHTMLComponent(r.Context(), w, page, "Failed to render gallery page", "Failed to render page")
}

// POST /upload
func HandleUpload(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	saved, err := store.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, uploads.ErrNotImage) {
			http.Error(w, "file must be an image", http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store upload")
		http.Error(w, "Failed to store upload", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	photo, err := db.CreatePhoto(ctx, database.DB, db.CreatePhotoParams{
		Title:        title,
		ImagePath:    saved.Path,
		ThumbPath:    saved.ThumbPath,
		OriginalName: header.Filename,
	})
	if err != nil {
		// The row never landed, so the stored files must not linger either.
		if rmErr := store.Remove(saved.Key); rmErr != nil {
			logger.Error().Err(rmErr).Str("key", saved.Key).Msg("Failed to clean up orphaned upload")
		}
		logger.Error().Err(err).Msg("Failed to record photo")
		http.Error(w, "Failed to record photo", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("photo_id", photo.ID).Str("key", saved.Key).Msg("Photo uploaded")
	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
