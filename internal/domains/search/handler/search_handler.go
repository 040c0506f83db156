package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BleepBlorpBlop/soundstories-app/internal/shared/response"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/logger"
)

// TrackSearcher is the catalog search collaborator.
// Satisfied by the Spotify client.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, query string) (json.RawMessage, error)
}

// SearchHandler proxies the admin form's track search to the catalog API.
// The raw upstream response is relayed as-is so the form can render album
// art and artist names without this service re-modeling Spotify's schema.
type SearchHandler struct {
	searcher TrackSearcher
}

// NewSearchHandler creates a new search handler instance
func NewSearchHandler(searcher TrackSearcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search handles GET /search?query=
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		response.BadRequest(c, "Query parameter required")
		return
	}

	results, err := h.searcher.SearchTracks(c.Request.Context(), query)
	if err != nil {
		logger.Error("spotify search failed", err)
		response.BadGateway(c, "Failed to search Spotify")
		return
	}

	c.Data(http.StatusOK, "application/json", results)
}
