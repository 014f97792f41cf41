package handler

import (
	"time"

	"registro/internal/user/models"
)

// UserResponse is the HTTP representation of a user. The password hash
// never leaves the service boundary.
type UserResponse struct {
	ID            int64     `json:"id"`
	UUID          string    `json:"uuid"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	SessionStatus string    `json:"sessionStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromUser converts an aggregate to its HTTP representation.
func FromUser(u *models.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		UUID:          u.UUID.String(),
		Name:          u.Name,
		Email:         u.Email.String(),
		Phone:         u.Phone.String(),
		SessionStatus: string(u.SessionStatus),
		Status:        string(u.Status),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// ListResponse is the paginated envelope for GET /users.
type ListResponse struct {
	Data  []*UserResponse `json:"data"`
	Limit int             `json:"limit"`
	Page  int             `json:"page"`
}

// FromUsers builds the list envelope.
func FromUsers(users []*models.User, limit, page int) *ListResponse {
	data := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, FromUser(user))
	}
	return &ListResponse{Data: data, Limit: limit, Page: page}
}
