package handler

import (
	"net/http"

	"github.com/aldenjg/cornharvest/internal/domain"
)

// HandleCatalog lists shop items and prices
func HandleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, domain.Catalog())
	}
}
