package handler

import (
	"net/http"

	"github.com/hcstnb2047/lvdash/models"
)

type bookStatusRequest struct {
	File   string            `json:"file"`
	Status models.BookStatus `json:"status"`
}

type bookNoteRequest struct {
	File string `json:"file"`
	Text string `json:"text"`
}

func (h *Handler) library(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lib, err := h.Books.Library(r.Context(), q.Get("tier"), q.Get("status"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lib)
}

func (h *Handler) updateBookStatus(w http.ResponseWriter, r *http.Request) {
	var req bookStatusRequest
	if err := decodeJSON(r, &req); err != nil || req.File == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.Books.UpdateStatus(r.Context(), req.File, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *Handler) addBookNote(w http.ResponseWriter, r *http.Request) {
	var req bookNoteRequest
	if err := decodeJSON(r, &req); err != nil || req.File == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.Books.AddNote(r.Context(), req.File, req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}
