// Package handler wires the company HTTP endpoints to the company service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"registro/internal/company/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/httputil"
	"registro/pkg/requestcontext"
)

// Service defines the company operations the handler needs.
type Service interface {
	Create(ctx context.Context, params models.CompanyParams) (*models.Company, error)
	Update(ctx context.Context, id int64, params models.CompanyParams) (*models.Company, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Company, error)
	DeleteByID(ctx context.Context, id int64) error
	GetByUUID(ctx context.Context, companyUUID uuid.UUID) (*models.Company, error)
	List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.Company, error)
}

// Handler wires company endpoints to the company service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a company handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts company endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/companies", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)
		r.Get("/{uuid}", h.HandleGetByUUID)
		r.Put("/{id}", h.HandleUpdate)
		r.Patch("/{id}/status", h.HandleUpdateStatus)
		r.Delete("/{id}", h.HandleDelete)
	})
}

// HandleCreate handles POST /companies.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.Create(ctx, req.ToParams())
	if err != nil {
		h.logger.WarnContext(ctx, "company create rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromCompany(company))
}

// HandleUpdate handles PUT /companies/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.Update(ctx, id, req.ToParams())
	if err != nil {
		h.logger.WarnContext(ctx, "company update rejected",
			"request_id", requestID,
			"company_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCompany(company))
}

// HandleUpdateStatus handles PATCH /companies/{id}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCompany(company))
}

// HandleDelete handles DELETE /companies/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(ctx, id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetByUUID handles GET /companies/{uuid}.
func (h *Handler) HandleGetByUUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid company uuid"))
		return
	}

	company, err := h.service.GetByUUID(ctx, companyUUID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCompany(company))
}

// HandleList handles GET /companies.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := ParseListQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	companies, err := h.service.List(ctx, query.Filter, query.Page, query.Sort)
	if err != nil {
		h.logger.ErrorContext(ctx, "company list failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK,
		FromCompanies(companies, query.Select, query.Page.Limit(), query.Page.Page()))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid company id"))
		return 0, false
	}
	return id, true
}
