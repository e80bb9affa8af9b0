// internal/api/adminphotos/handlers.go
//
// Minimal internal content-management view for the Photo table. This is an
// operator tool, kept entirely off the public API surface.
package adminphotos

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fixfirst/fixfirst/internal/api/apiutil"
	"github.com/fixfirst/fixfirst/internal/db"
	pagestempl "github.com/fixfirst/fixfirst/internal/templates/pages"
	"github.com/fixfirst/fixfirst/internal/uploads"
)

const queryTimeout = 5 * time.Second

var (
	database *db.DB
	store    *uploads.Store
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(d *db.DB, s *uploads.Store) {
	database = d
	store = s
}

// GET /admin/photos
func HandlePhotosPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	photos, err := database.ListPhotos(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list photos for admin view")
		http.Error(w, "Failed to load photos", http.StatusInternalServerError)
		return
	}

	page := pagestempl.Layout("Photo Admin", pagestempl.AdminPhotos(photos))
	apiutil.RenderHTMLComponent(r.Context(), w, page, "Failed to render admin photos page", "Failed to render page")
}

// HandlePhoto dispatches /admin/photos/{id} and /admin/photos/{id}/delete.
func HandlePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/admin/photos/")
	if strings.HasSuffix(rest, "/delete") {
		handleDelete(w, r, strings.TrimSuffix(rest, "/delete"))
		return
	}
	handleUpdateTitle(w, r, rest)
}

func handleUpdateTitle(w http.ResponseWriter, r *http.Request, rawID string) {
	logger := log.Ctx(r.Context())

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	if err := database.UpdatePhotoTitle(ctx, id, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("photo_id", id).Msg("Failed to update photo title")
		http.Error(w, "Failed to update photo", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/photos", http.StatusSeeOther)
}

func handleDelete(w http.ResponseWriter, r *http.Request, rawID string) {
	logger := log.Ctx(r.Context())

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	photo, err := database.GetPhotoByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("photo_id", id).Msg("Failed to load photo")
		http.Error(w, "Failed to delete photo", http.StatusInternalServerError)
		return
	}

	if err := database.DeletePhoto(ctx, id); err != nil {
		logger.Error().Err(err).Int64("photo_id", id).Msg("Failed to delete photo row")
		http.Error(w, "Failed to delete photo", http.StatusInternalServerError)
		return
	}

	// Row is gone; file cleanup is best effort.
	if err := store.Remove(path.Base(photo.ImagePath)); err != nil {
		logger.Warn().Err(err).Int64("photo_id", id).Msg("Failed to remove photo files")
	}

	http.Redirect(w, r, "/admin/photos", http.StatusSeeOther)
}
