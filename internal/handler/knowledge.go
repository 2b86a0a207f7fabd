package handler

import (
	"net/http"
	"strconv"

	"github.com/hcstnb2047/lvdash/models"
)

func (h *Handler) listKnowledge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = models.FilterAll
	}
	if category != models.FilterAll && !models.KnowledgeCategory(category).Valid() {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	refresh, _ := strconv.ParseBool(q.Get("refresh"))

	files, err := h.Knowledge.Tree(r.Context(), refresh)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"files": models.FilterKnowledge(files, category),
		"total": len(files),
	})
}

func (h *Handler) knowledgeContent(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	content, err := h.Knowledge.Content(r.Context(), path)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path, "content": content})
}

func (h *Handler) searchKnowledge(w http.ResponseWriter, r *http.Request) {
	result, err := h.Knowledge.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
