package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
)

// ListProducts godoc
// @Summary List the seeded product catalog
// @Description Products are seeded by the store's init script and read-only through the API.
// @Tags products
// @Produce json
// @Success 200 {object} ProductListEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll()
	if err != nil {
		h.respondServerError(w, "could not fetch products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, ProductListEnvelope{Success: true, Count: len(products), Data: products})
}
