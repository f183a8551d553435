// Package pricing turns a validated quote intake into a price estimate.
//
// All amounts are whole US dollars.
package pricing

import (
	"errors"
	"fmt"
	"strconv"

	"murray-moving/internal/data/entity"
)

const (
	// MilesPerPrefixStep is the distance assumed between adjacent zip prefixes.
	MilesPerPrefixStep = 50
	// PricePerMile is charged on top of the base price.
	PricePerMile = 2
	// DefaultBasePrice applies to 5-bedroom-plus and any unknown size.
	DefaultBasePrice = 2200
)

var ErrInvalidZip = errors.New("invalid zip code")

var basePrices = map[string]int{
	entity.HomeSizeStudio:       500,
	entity.HomeSizeOneBedroom:   700,
	entity.HomeSizeTwoBedroom:   1000,
	entity.HomeSizeThreeBedroom: 1400,
	entity.HomeSizeFourBedroom:  1800,
}

// Estimate is the derived pricing of a quote. It is computed once at
// submission and never accepted from a client.
type Estimate struct {
	Distance      int
	BasePrice     int
	DistancePrice int
	TotalEstimate int
}

// Calculate prices a move between two zip codes for a home size.
func Calculate(fromZip, toZip, homeSize string) (Estimate, error) {
	fromPrefix, err := zipPrefix(fromZip)
	if err != nil {
		return Estimate{}, err
	}
	toPrefix, err := zipPrefix(toZip)
	if err != nil {
		return Estimate{}, err
	}

	diff := fromPrefix - toPrefix
	if diff < 0 {
		diff = -diff
	}

	distance := diff * MilesPerPrefixStep
	base := BasePrice(homeSize)
	distancePrice := distance * PricePerMile

	return Estimate{
		Distance:      distance,
		BasePrice:     base,
		DistancePrice: distancePrice,
		TotalEstimate: base + distancePrice,
	}, nil
}

func BasePrice(homeSize string) int {
	if price, ok := basePrices[homeSize]; ok {
		return price
	}
	return DefaultBasePrice
}

// Apply copies the estimate onto a quote, overwriting anything already there.
func (e Estimate) Apply(q *entity.QuoteRequest) {
	q.Distance = e.Distance
	q.BasePrice = e.BasePrice
	q.DistancePrice = e.DistancePrice
	q.TotalEstimate = e.TotalEstimate
}

func zipPrefix(zip string) (int, error) {
	if len(zip) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidZip, zip)
	}
	prefix := zip[:2]
	for _, c := range prefix {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidZip, zip)
		}
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidZip, zip)
	}
	return n, nil
}
