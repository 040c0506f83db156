package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	results   json.RawMessage
	err       error
	lastQuery string
	calls     int
}

func (f *fakeSearcher) SearchTracks(_ context.Context, query string) (json.RawMessage, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func performSearch(searcher *fakeSearcher, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/search", NewSearchHandler(searcher).Search)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearch_RelaysUpstreamBody(t *testing.T) {
	searcher := &fakeSearcher{results: json.RawMessage(`{"tracks":{"items":[]}}`)}

	w := performSearch(searcher, "/search?query=bohemian+rhapsody")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"tracks":{"items":[]}}`, w.Body.String())
	assert.Equal(t, "bohemian rhapsody", searcher.lastQuery)
}

func TestSearch_MissingQuery(t *testing.T) {
	searcher := &fakeSearcher{}

	for _, target := range []string{"/search", "/search?query=", "/search?query=%20%20"} {
		w := performSearch(searcher, target)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
		assert.Equal(t, "Query parameter required", body.Error.Message)
	}

	assert.Zero(t, searcher.calls, "upstream must not be called without a query")
}

func TestSearch_UpstreamFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("token endpoint returned status 503")}

	w := performSearch(searcher, "/search?query=anything")

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "BAD_GATEWAY", body.Error.Code)
}
