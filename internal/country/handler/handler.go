// Package handler exposes read-only country reference endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"registro/internal/country/models"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/httputil"
	"registro/pkg/platform/sentinel"
)

// ErrCountryNotFound is returned when no country matches the requested code.
var ErrCountryNotFound = dErrors.New(dErrors.CodeNotFound, "country not found")

// Store defines the country lookups the handler needs.
type Store interface {
	FindByCode(ctx context.Context, code string) (*models.Country, error)
	List(ctx context.Context) ([]*models.Country, error)
}

// Handler serves country reference data. Countries are seeded by migrations
// and never mutated through the API.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// New constructs a country handler.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts country endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/countries", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{code}", h.HandleGetByCode)
	})
}

// HandleList handles GET /countries.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	countries, err := h.store.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "country list failed", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal error"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, countries)
}

// HandleGetByCode handles GET /countries/{code}. The code matches iso2, iso3
// or locale, case-insensitively.
func (h *Handler) HandleGetByCode(w http.ResponseWriter, r *http.Request) {
	country, err := h.store.FindByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, ErrCountryNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "country lookup failed", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal error"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, country)
}
