package response

import (
	"time"

	"murray-moving/internal/data/entity"
)

type QuoteResponse struct {
	ID              int64              `json:"id"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	FromAddress     string             `json:"fromAddress"`
	FromZip         string             `json:"fromZip"`
	ToAddress       string             `json:"toAddress"`
	ToZip           string             `json:"toZip"`
	MoveDate        string             `json:"moveDate"`
	HomeSize        string             `json:"homeSize"`
	HomeType        string             `json:"homeType"`
	Services        []string           `json:"services"`
	SpecialRequests *string            `json:"specialRequests"`
	Distance        int                `json:"distance"`
	BasePrice       int                `json:"basePrice"`
	DistancePrice   int                `json:"distancePrice"`
	TotalEstimate   int                `json:"totalEstimate"`
	CreatedAt       time.Time          `json:"createdAt"`
	Status          entity.QuoteStatus `json:"status"`
}

func QuoteToResponse(q *entity.QuoteRequest) QuoteResponse {
	services := q.Services
	if services == nil {
		services = []string{}
	}

	return QuoteResponse{
		ID:              q.ID,
		FirstName:       q.FirstName,
		LastName:        q.LastName,
		Email:           q.Email,
		Phone:           q.Phone,
		FromAddress:     q.FromAddress,
		FromZip:         q.FromZip,
		ToAddress:       q.ToAddress,
		ToZip:           q.ToZip,
		MoveDate:        q.MoveDate,
		HomeSize:        q.HomeSize,
		HomeType:        q.HomeType,
		Services:        services,
		SpecialRequests: q.SpecialRequests,
		Distance:        q.Distance,
		BasePrice:       q.BasePrice,
		DistancePrice:   q.DistancePrice,
		TotalEstimate:   q.TotalEstimate,
		CreatedAt:       q.CreatedAt,
		Status:          q.Status,
	}
}

func QuotesToResponse(quotes []*entity.QuoteRequest) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteToResponse(q))
	}
	return out
}
