package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/repository"
	"github.com/Divy2308/Synobiz/internal/utils"
)

// storeError terminates the request for a repository failure. Taxonomy
// errors translate to their HTTP equivalents; anything else is logged and
// reported generically so driver details never reach the client.
func storeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		utils.Error(w, http.StatusConflict, "already exists")
	case errors.Is(err, repository.ErrUnavailable):
		log.Error().Err(err).Msg("store unreachable")
		utils.Error(w, http.StatusServiceUnavailable, "database connection failed, please check server logs")
	default:
		log.Error().Err(err).Msg("store failure")
		utils.Error(w, http.StatusInternalServerError, "an internal error occurred")
	}
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
