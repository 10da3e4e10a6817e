package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getPathID parses the base-10 integer path parameter with the given name.
// It reports false when the parameter is missing, not a number, or not
// positive. No stored row can have such an id.
func getPathID(r *http.Request, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
