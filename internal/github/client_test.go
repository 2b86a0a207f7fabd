package github

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup returns a client talking to a test server and the mux serving it.
func setup(t *testing.T) (*client, *http.ServeMux) {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL + "/")
	require.NoError(t, err)

	c := New("test-token", "owner", "repo",
		WithBaseURL(u),
		WithRetry(3, time.Millisecond, 50*time.Millisecond),
	).(*client)
	return c, mux
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_WithToken(t *testing.T) {
	c := New("test-token", "owner", "repo")

	assert.NotNil(t, c)
	assert.Implements(t, (*Client)(nil), c)
	assert.Equal(t, "main", c.(*client).ref)
}

func TestNew_WithoutToken(t *testing.T) {
	c := New("", "owner", "repo", WithRef("develop"))

	assert.NotNil(t, c)
	assert.Equal(t, "develop", c.(*client).ref)
}

func TestAuthTransport_RoundTrip(t *testing.T) {
	transport := &authTransport{token: "my-secret-token"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-secret-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	assert.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, req.Header.Get("Authorization"), "original request must not be mutated")
}

func TestClient_SendsTokenAndAPIVersion(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
		writeJSON(t, w, map[string]any{"login": "me"})
	})

	assert.NoError(t, c.ValidateToken(t.Context()))
}

func TestValidateToken_Unauthorized(t *testing.T) {
	c, mux := setup(t)

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(t, w, map[string]any{"message": "Bad credentials"})
	})

	err := c.ValidateToken(t.Context())

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Equal(t, "invalid token", err.Error())
}
