package handler

import (
	"net/http"
)

type patRequest struct {
	PAT string `json:"pat"`
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": h.Auth.Authenticated(r.Context())})
}

func (h *Handler) setPAT(w http.ResponseWriter, r *http.Request) {
	var req patRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Auth.SetPAT(r.Context(), req.PAT); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *Handler) clearPAT(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.ClearPAT(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
