package handler

import (
	"net/http"
	"strconv"
	"strings"

	"registro/internal/company/models"
	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

// CompanyRequest is the HTTP request body for POST /companies and
// PUT /companies/{id}. Domain rules run in the aggregate; Validate only
// checks transport shape so error messages stay close to the wire.
type CompanyRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	TaxID        string `json:"taxId"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Landline     string `json:"landline"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
	BusinessArea string `json:"businessArea"`
	PersonType   string `json:"personType"`
	Status       string `json:"status"`
	CountryCode  string `json:"countryCode"`
}

// Validate trims fields and checks transport-level requirements.
func (r *CompanyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeValidation, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.TaxID = strings.TrimSpace(r.TaxID)
	r.Address = strings.TrimSpace(r.Address)
	r.CountryCode = strings.TrimSpace(r.CountryCode)

	if r.CountryCode == "" {
		return dErrors.New(dErrors.CodeValidation, "countryCode is required")
	}
	return nil
}

// ToParams converts the request body to aggregate construction input.
func (r *CompanyRequest) ToParams() models.CompanyParams {
	return models.CompanyParams{
		Name:         r.Name,
		Email:        r.Email,
		TaxID:        r.TaxID,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		Landline:     r.Landline,
		Phone:        r.Phone,
		Description:  r.Description,
		BusinessArea: r.BusinessArea,
		PersonType:   r.PersonType,
		Status:       r.Status,
		CountryCode:  r.CountryCode,
	}
}

// StatusRequest is the HTTP request body for PATCH /companies/{id}/status.
type StatusRequest struct {
	Status string `json:"status"`
}

// ListQuery carries the decoded query string of GET /companies.
type ListQuery struct {
	Filter models.Filter
	Page   domain.OffsetPagination
	Sort   domain.Sort
	Select []string
}

// ParseListQuery decodes filters, pagination, ordering and projection from
// the request query string. Unknown sort or select fields are rejected.
func ParseListQuery(r *http.Request) (ListQuery, error) {
	q := r.URL.Query()

	var out ListQuery
	out.Filter = models.Filter{
		Name:         q.Get("name"),
		Email:        q.Get("email"),
		TaxID:        q.Get("taxId"),
		City:         q.Get("city"),
		State:        q.Get("state"),
		BusinessArea: q.Get("businessArea"),
		PersonType:   models.PersonType(strings.ToLower(q.Get("personType"))),
	}
	if raw := q.Get("countryId"); raw != "" {
		countryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, dErrors.New(dErrors.CodeValidation, "countryId must be an integer")
		}
		out.Filter.CountryID = countryID
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

	if raw := q.Get("select"); raw != "" {
		fields, err := parseSelect(raw, models.SelectableFields)
		if err != nil {
			return out, err
		}
		out.Select = fields
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

// parseSelect validates a comma-separated projection list against the
// allowlist, case-insensitively, returning canonical field names.
func parseSelect(raw string, allowed []string) ([]string, error) {
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		canonical := ""
		for _, candidate := range allowed {
			if strings.EqualFold(candidate, name) {
				canonical = candidate
				break
			}
		}
		if canonical == "" {
			return nil, dErrors.Newf(dErrors.CodeValidation, "unknown select field %q", name)
		}
		fields = append(fields, canonical)
	}
	return fields, nil
}
