package api

import (
	"errors"
	"net/http"

	"github.com/meur/cs2inspect/internal/inspect"
	"github.com/meur/cs2inspect/internal/logging"
	"github.com/meur/cs2inspect/internal/models"
	"github.com/rs/zerolog/hlog"
)

const (
	msgMissingURL    = "Missing url parameter"
	msgInvalidFormat = "Invalid format. Use !g code or steam:// link"
	msgParseFailed   = "Failed to parse item info"
)

// handleInspect parses a gen code or inspect link from the url parameter
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	logger := hlog.FromRequest(r)
	logger.Info().Str("url", logging.Clip(raw, s.inputLimit)).Msg("received request")

	if raw == "" {
		respondError(w, http.StatusBadRequest, msgMissingURL)
		return
	}

	var (
		item models.Item
		err  error
	)

	format := inspect.Detect(raw)
	switch format {
	case inspect.FormatGenCode:
		item, err = inspect.ParseGenCode(raw)
	case inspect.FormatInspectLink:
		var link inspect.Link
		link, err = inspect.ParseInspectLink(raw)
		if err == nil {
			logger.Debug().
				Str("owner", string(link.Owner)).
				Str("owner_id", link.OwnerID).
				Msg("decoded inspect link")
			item = link.Item()
		}
	default:
		err = inspect.ErrUnknownFormat
	}

	if err != nil {
		logger.Warn().Err(err).Stringer("format", format).Msg("cannot parse input")
		status, message := errorResponse(err)
		respondError(w, status, message)
		return
	}

	logger.Info().
		Stringer("format", format).
		Int("defindex", item.DefIndex).
		Int("paintindex", item.PaintIndex).
		Int("paintseed", item.PaintSeed).
		Float64("floatvalue", item.FloatValue).
		Str("itemid", item.ItemID).
		Msg("returning item info")

	respondJSON(w, http.StatusOK, models.NewItemInfoResponse(item))
}

// handleHealth is the liveness probe
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// errorResponse maps parser errors onto HTTP status and public message
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, inspect.ErrUnknownFormat):
		return http.StatusBadRequest, msgInvalidFormat
	case errors.Is(err, inspect.ErrParseFailed):
		return http.StatusBadRequest, msgParseFailed
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
