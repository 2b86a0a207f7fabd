package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hcstnb2047/lvdash/models"
)

const (
	defaultRunCount = 3
	maxRunCount     = 100
)

type dispatchRequest struct {
	Inputs map[string]string `json:"inputs"`
}

func (h *Handler) listWorkflows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := q.Get("filter")
	if filter == "" {
		filter = models.FilterAll
	}
	refresh, _ := strconv.ParseBool(q.Get("refresh"))

	snap, err := h.Dashboard.Snapshot(r.Context(), refresh)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap.View(filter))
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid workflow id")
		return
	}

	count := defaultRunCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 || count > maxRunCount {
			writeError(w, http.StatusBadRequest, "count must be between 1 and 100")
			return
		}
	}

	runs, err := h.Workflows.Runs(r.Context(), id, count)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["file"]

	var req dispatchRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if _, err := h.Dashboard.Dispatch(r.Context(), fileName, req.Inputs); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"workflow": fileName})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["file"]

	on, err := h.Preferences.ToggleFavorite(r.Context(), fileName)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workflow": fileName, "favorite": on})
}

func (h *Handler) toggleVisibility(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["file"]

	hidden, err := h.Preferences.ToggleHidden(r.Context(), fileName)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workflow": fileName, "visible": !hidden})
}
