package response

import (
	"time"

	"murray-moving/internal/data/entity"
)

type ContactResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

func ContactToResponse(c *entity.ContactSubmission) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		IsRead:    c.IsRead,
	}
}

func ContactsToResponse(submissions []*entity.ContactSubmission) []ContactResponse {
	out := make([]ContactResponse, 0, len(submissions))
	for _, c := range submissions {
		out = append(out, ContactToResponse(c))
	}
	return out
}
