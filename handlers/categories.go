package handlers

import (
	"net/http"

	"castguide/config"
)

// CategoriesHandler serves the configured category table.
type CategoriesHandler struct {
	Categories config.CategoryTable
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(categories config.CategoryTable) *CategoriesHandler {
	return &CategoriesHandler{Categories: categories}
}

// List returns the full key → category mapping. No upstream call involved.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Categories)
}
