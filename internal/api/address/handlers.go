// internal/api/address/handlers.go
package address

import (
	"net/http"

	"github.com/fixfirst/fixfirst/internal/api/apiutil"
	"github.com/fixfirst/fixfirst/internal/geocode"
)

var client *geocode.Client

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *geocode.Client) {
	client = c
}

// GET /api/address-search?q=
//
// Always answers 200 with a (possibly empty) list; upstream failures are the
// client's problem only insofar as they see no suggestions.
func HandleAddressSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	matches := client.Search(r.Context(), q)
	apiutil.WriteJSON(w, http.StatusOK, matches)
}
