package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftcost/craftcost-backend/internal/middleware"
	"github.com/craftcost/craftcost-backend/internal/modules/product"
)

// Handler exposes the dashboard endpoint: a per-user summary built from the
// product listing.
type Handler struct {
	products product.Service
}

func NewHandler(products product.Service) *Handler {
	return &Handler{products: products}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, protect func(http.Handler) http.Handler) {
	router.Group(func(r chi.Router) {
		r.Use(protect)
		r.Get("/api/dashboard", h.getDashboard)
	})
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page, err := h.products.ListProducts(r.Context(), userID, product.ListFilter{})
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  fmt.Sprintf("Welcome to dashboard of user %s", userID),
		"products": page.Items,
		"total":    page.Total,
	})
}
