// internal/api/site/handlers.go
package site

import (
	"net/http"

	"github.com/fixfirst/fixfirst/internal/api/apiutil"
	pagestempl "github.com/fixfirst/fixfirst/internal/templates/pages"
)

// GET /commercial
func HandleCommercial(w http.ResponseWriter, r *http.Request) {
	page := pagestempl.Layout("Commercial Services", pagestempl.Commercial())
	apiutil.RenderHTMLComponent(r.Context(), w, page, "Failed to render commercial page", "Failed to render page")
}

// GET /residential
func HandleResidential(w http.ResponseWriter, r *http.Request) {
	page := pagestempl.Layout("Residential Services", pagestempl.Residential())
	apiutil.RenderHTMLComponent(r.Context(), w, page, "Failed to render residential page", "Failed to render page")
}
