package handler

import (
	"net/http"
	"strconv"
	"strings"

	"registro/internal/user/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

// UserRequest is the HTTP request body for POST /users and PUT /users/{id}.
// OldPassword is only meaningful on update, when Password is being changed.
type UserRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	OldPassword   string `json:"oldPassword"`
	Phone         string `json:"phone"`
	SessionStatus string `json:"sessionStatus"`
	Status        string `json:"status"`
}

// Validate trims fields and checks transport-level requirements.
func (r *UserRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeValidation, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	return nil
}

// ToParams converts the request body to aggregate construction input.
func (r *UserRequest) ToParams() models.UserParams {
	return models.UserParams{
		Name:          r.Name,
		Email:         r.Email,
		Password:      r.Password,
		Phone:         r.Phone,
		SessionStatus: r.SessionStatus,
		Status:        r.Status,
	}
}

// StatusRequest is the body for the status patch endpoints.
type StatusRequest struct {
	Status string `json:"status"`
}

// ListQuery carries the decoded query string of GET /users.
type ListQuery struct {
	Filter models.Filter
	Page   domain.OffsetPagination
	Sort   domain.Sort
}

// ParseListQuery decodes filters, pagination and ordering from the request
// query string.
func ParseListQuery(r *http.Request) (ListQuery, error) {
	q := r.URL.Query()

	var out ListQuery
	out.Filter = models.Filter{
		Name:          q.Get("name"),
		Email:         q.Get("email"),
		Status:        models.UserStatus(strings.ToLower(q.Get("status"))),
		SessionStatus: models.SessionStatus(strings.ToLower(q.Get("sessionStatus"))),
	}

	limit, err := intQuery(q.Get("limit"), "limit")
	if err != nil {
		return out, err
	}
	page, err := intQuery(q.Get("page"), "page")
	if err != nil {
		return out, err
	}
	out.Page = domain.NewOffsetPagination(limit, page)

	if raw := q.Get("sort"); raw != "" {
		sortBy, err := domain.NewSort(strings.Split(raw, ","), models.SortableFields)
		if err != nil {
			return out, err
		}
		out.Sort = sortBy
	}
	return out, nil
}

func intQuery(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeValidation, "%s must be an integer", name)
	}
	return value, nil
}
