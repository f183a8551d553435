package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"murray-moving/internal/data/entity"
)

// Message is a rendered e-mail.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

var quoteTemplate = template.Must(template.New("quote").Funcs(template.FuncMap{
	"dollars": formatDollars,
}).Parse(`<h2>New Quote Request Received</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Move Date:</strong> {{.MoveDate}}</p>
<p><strong>From Address:</strong> {{.FromAddress}}</p>
<p><strong>From Zip:</strong> {{.FromZip}}</p>
<p><strong>To Address:</strong> {{.ToAddress}}</p>
<p><strong>To Zip:</strong> {{.ToZip}}</p>
<p><strong>Home Size:</strong> {{.HomeSize}}</p>
<p><strong>Home Type:</strong> {{.HomeType}}</p>
<p><strong>Services:</strong> {{.Services}}</p>
<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>
<p><strong>Distance:</strong> {{.Distance}} miles</p>
<p><strong>Base Price:</strong> {{dollars .BasePrice}}</p>
<p><strong>Distance Price:</strong> {{dollars .DistancePrice}}</p>
<p><strong>Total Estimate:</strong> {{dollars .TotalEstimate}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
<p><strong>Created On:</strong> {{.CreatedAt}}</p>
`))

type quoteView struct {
	*entity.QuoteRequest
	Services        string
	SpecialRequests string
	CreatedAt       string
}

// RenderQuote builds the business notification for a new quote request.
func RenderQuote(from, to string, quote *entity.QuoteRequest) (Message, error) {
	view := quoteView{
		QuoteRequest:    quote,
		Services:        "None",
		SpecialRequests: "None",
		CreatedAt:       quote.CreatedAt.Format(time.RFC1123),
	}
	if len(quote.Services) > 0 {
		view.Services = strings.Join(quote.Services, ", ")
	}
	if quote.SpecialRequests != nil && *quote.SpecialRequests != "" {
		view.SpecialRequests = *quote.SpecialRequests
	}

	var body bytes.Buffer
	if err := quoteTemplate.Execute(&body, view); err != nil {
		return Message{}, fmt.Errorf("render quote notification: %w", err)
	}

	return Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New Quote Request from %s %s", quote.FirstName, quote.LastName),
		HTML:    body.String(),
	}, nil
}

// formatDollars renders whole dollars with thousands separators, e.g. $1,200.
func formatDollars(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String()
}
