// Package handler wires the user HTTP endpoints to the user service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"registro/internal/user/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
	"registro/pkg/platform/httputil"
	"registro/pkg/requestcontext"
)

// Service defines the user operations the handler needs.
type Service interface {
	Create(ctx context.Context, params models.UserParams) (*models.User, error)
	Update(ctx context.Context, id int64, params models.UserParams, oldPassword string) (*models.User, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.User, error)
	UpdateSessionStatus(ctx context.Context, id int64, status string) (*models.User, error)
	DeleteByID(ctx context.Context, id int64) error
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter models.Filter, page domain.OffsetPagination, sort domain.Sort) ([]*models.User, error)
}

// Handler wires user endpoints to the user service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a user handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts user endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)
		r.Get("/{uuid}", h.HandleGetByUUID)
		r.Put("/{id}", h.HandleUpdate)
		r.Patch("/{id}/status", h.HandleUpdateStatus)
		r.Patch("/{id}/session-status", h.HandleUpdateSessionStatus)
		r.Delete("/{id}", h.HandleDelete)
	})
}

// HandleCreate handles POST /users.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.Create(ctx, req.ToParams())
	if err != nil {
		h.logger.WarnContext(ctx, "user create rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromUser(user))
}

// HandleUpdate handles PUT /users/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.Update(ctx, id, req.ToParams(), req.OldPassword)
	if err != nil {
		h.logger.WarnContext(ctx, "user update rejected",
			"request_id", requestID,
			"user_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleUpdateStatus handles PATCH /users/{id}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.patchStatus(w, r, h.service.UpdateStatus)
}

// HandleUpdateSessionStatus handles PATCH /users/{id}/session-status.
func (h *Handler) HandleUpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	h.patchStatus(w, r, h.service.UpdateSessionStatus)
}

func (h *Handler) patchStatus(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id int64, status string) (*models.User, error)) {
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

	user, err := apply(ctx, id, req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleDelete handles DELETE /users/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetByUUID handles GET /users/{uuid}.
func (h *Handler) HandleGetByUUID(w http.ResponseWriter, r *http.Request) {
	userUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid user uuid"))
		return
	}

	user, err := h.service.GetByUUID(r.Context(), userUUID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleList handles GET /users.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := ParseListQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	users, err := h.service.List(ctx, query.Filter, query.Page, query.Sort)
	if err != nil {
		h.logger.ErrorContext(ctx, "user list failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK,
		FromUsers(users, query.Page.Limit(), query.Page.Page()))
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid user id"))
		return 0, false
	}
	return id, true
}
