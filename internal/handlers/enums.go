package handlers

import (
	"net/http"

	"photospro/internal/palette"
)

// EnumsHandler lists every enum label with its display color.
type EnumsHandler struct{}

func NewEnumsHandler() *EnumsHandler { return &EnumsHandler{} }

func (h *EnumsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, palette.Catalog())
}
