package github

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCode(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /search/code", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sleep path:Knowledge repo:owner/repo", r.URL.Query().Get("q"))
		assert.Contains(t, r.Header.Get("Accept"), "text-match")
		w.Header().Set("X-RateLimit-Remaining", "12")
		writeJSON(t, w, map[string]any{
			"total_count": 1,
			"items": []map[string]any{
				{
					"name": "2026-01-02_sleep.md",
					"path": "Knowledge/Notes/2026-01-02_sleep.md",
					"sha":  "s1",
					"text_matches": []map[string]any{
						{"fragment": "deep sleep"},
						{"fragment": "sleep debt"},
						{"fragment": "third"},
					},
				},
			},
		})
	})

	results, remaining, err := c.SearchCode(t.Context(), "sleep path:Knowledge")

	require.NoError(t, err)
	assert.Equal(t, 12, remaining)
	require.Len(t, results, 1)
	assert.Equal(t, "Knowledge/Notes/2026-01-02_sleep.md", results[0].GetPath())
	assert.Len(t, results[0].TextMatches, 3)
	assert.Equal(t, "deep sleep", results[0].TextMatches[0].GetFragment())
}

func TestSearchCode_Forbidden(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /search/code", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		writeJSON(t, w, map[string]any{"message": "You have exceeded a secondary rate limit"})
	})

	results, remaining, err := c.SearchCode(t.Context(), "sleep")

	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, remaining)
}

func TestSearchCode_ServerError(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /search/code", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	results, _, err := c.SearchCode(t.Context(), "sleep")

	assert.Nil(t, results)
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
}

func TestSearchRemaining_DefaultsWithoutHeader(t *testing.T) {
	assert.Equal(t, defaultSearchRemaining, searchRemaining(nil))
}
