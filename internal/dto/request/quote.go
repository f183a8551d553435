package request

// CreateQuoteRequest is the public quote intake. Pricing fields and status
// are derived server-side, so the struct has no place for them.
type CreateQuoteRequest struct {
	FirstName       string   `json:"firstName" validate:"required,min=2"`
	LastName        string   `json:"lastName" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,min=10"`
	FromAddress     string   `json:"fromAddress" validate:"required,min=5"`
	FromZip         string   `json:"fromZip" validate:"required,zipcode"`
	ToAddress       string   `json:"toAddress" validate:"required,min=5"`
	ToZip           string   `json:"toZip" validate:"required,zipcode"`
	MoveDate        string   `json:"moveDate" validate:"required,isodate"`
	HomeSize        string   `json:"homeSize" validate:"required,oneof=studio 1-bedroom 2-bedroom 3-bedroom 4-bedroom 5-bedroom-plus"`
	HomeType        string   `json:"homeType" validate:"required,oneof=apartment house condo townhouse office other"`
	Services        []string `json:"services" validate:"omitempty,dive,oneof=packing unpacking storage"`
	SpecialRequests *string  `json:"specialRequests,omitempty" validate:"omitempty,max=2000"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}
