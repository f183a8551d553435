package request

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required,min=2"`
	Message   string `json:"message" validate:"required,min=10"`
}

// UpdateContactReadRequest uses a pointer so a missing isRead is told apart
// from false.
type UpdateContactReadRequest struct {
	IsRead *bool `json:"isRead"`
}
