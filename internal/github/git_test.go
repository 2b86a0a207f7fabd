package github

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTree_Recursive(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /repos/owner/repo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("recursive"))
		writeJSON(t, w, map[string]any{
			"sha":       "tree-sha",
			"truncated": false,
			"tree": []map[string]any{
				{"path": "Knowledge", "type": "tree", "sha": "t1", "mode": "040000"},
				{"path": "Knowledge/Notes/a.md", "type": "blob", "sha": "b1", "mode": "100644", "size": 12},
			},
		})
	})

	tree, err := c.GetTree(t.Context(), "main", true)

	require.NoError(t, err)
	assert.Equal(t, "tree-sha", tree.GetSHA())
	require.Len(t, tree.Entries, 2)
	assert.Equal(t, "blob", tree.Entries[1].GetType())
	assert.Equal(t, "Knowledge/Notes/a.md", tree.Entries[1].GetPath())
}

func TestGetTree_Error(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /repos/owner/repo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	tree, err := c.GetTree(t.Context(), "main", true)

	assert.Nil(t, tree)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}
