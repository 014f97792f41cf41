package handler

import (
	"time"

	"registro/internal/company/models"
)

// CompanyResponse is the full HTTP representation of a company.
type CompanyResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Landline     string    `json:"landline,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	CountryID    int64     `json:"countryId"`
	TaxID        string    `json:"taxId"`
	Description  string    `json:"description,omitempty"`
	BusinessArea string    `json:"businessArea"`
	PersonType   string    `json:"personType"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromCompany converts an aggregate to its HTTP representation.
func FromCompany(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           c.ID,
		UUID:         c.UUID.String(),
		Name:         c.Name,
		Email:        c.Email.String(),
		Landline:     c.Landline.String(),
		Phone:        c.Phone.String(),
		Address:      c.Address.String(),
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip.String(),
		CountryID:    c.CountryID,
		TaxID:        c.TaxID.String(),
		Description:  c.Description.String(),
		BusinessArea: string(c.BusinessArea),
		PersonType:   string(c.PersonType),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Project reduces the response to the selected fields. Fields were already
// validated against the allowlist when the query was parsed.
func (r *CompanyResponse) Project(fields []string) map[string]any {
	full := map[string]any{
		"id":           r.ID,
		"uuid":         r.UUID,
		"name":         r.Name,
		"email":        r.Email,
		"landline":     r.Landline,
		"phone":        r.Phone,
		"address":      r.Address,
		"city":         r.City,
		"state":        r.State,
		"zip":          r.Zip,
		"countryId":    r.CountryID,
		"taxId":        r.TaxID,
		"description":  r.Description,
		"businessArea": r.BusinessArea,
		"personType":   r.PersonType,
		"status":       r.Status,
		"createdAt":    r.CreatedAt,
		"updatedAt":    r.UpdatedAt,
	}
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		out[field] = full[field]
	}
	return out
}

// ListResponse is the paginated envelope for GET /companies.
type ListResponse struct {
	Data  []any `json:"data"`
	Limit int   `json:"limit"`
	Page  int   `json:"page"`
}

// FromCompanies builds the list envelope, applying the optional projection.
func FromCompanies(companies []*models.Company, selectFields []string, limit, page int) *ListResponse {
	data := make([]any, 0, len(companies))
	for _, company := range companies {
		response := FromCompany(company)
		if len(selectFields) > 0 {
			data = append(data, response.Project(selectFields))
			continue
		}
		data = append(data, response)
	}
	return &ListResponse{Data: data, Limit: limit, Page: page}
}
