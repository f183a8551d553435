package pricing

import (
	"testing"

	"murray-moving/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		fromZip  string
		toZip    string
		homeSize string
		want     Estimate
	}{
		{
			name:     "two bedroom across prefixes",
			fromZip:  "08016",
			toZip:    "10001",
			homeSize: "2-bedroom",
			want:     Estimate{Distance: 100, BasePrice: 1000, DistancePrice: 200, TotalEstimate: 1200},
		},
		{
			name:     "same prefix is a local move",
			fromZip:  "10001",
			toZip:    "10458",
			homeSize: "studio",
			want:     Estimate{Distance: 0, BasePrice: 500, DistancePrice: 0, TotalEstimate: 500},
		},
		{
			name:     "direction does not matter",
			fromZip:  "94105",
			toZip:    "02134",
			homeSize: "4-bedroom",
			want:     Estimate{Distance: 4600, BasePrice: 1800, DistancePrice: 9200, TotalEstimate: 11000},
		},
		{
			name:     "zip plus four",
			fromZip:  "12345-6789",
			toZip:    "13345",
			homeSize: "1-bedroom",
			want:     Estimate{Distance: 50, BasePrice: 700, DistancePrice: 100, TotalEstimate: 800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.fromZip, tt.toZip, tt.homeSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.BasePrice+got.DistancePrice, got.TotalEstimate)
			assert.Equal(t, got.Distance*PricePerMile, got.DistancePrice)
		})
	}
}

func TestBasePrice(t *testing.T) {
	tests := map[string]int{
		entity.HomeSizeStudio:       500,
		entity.HomeSizeOneBedroom:   700,
		entity.HomeSizeTwoBedroom:   1000,
		entity.HomeSizeThreeBedroom: 1400,
		entity.HomeSizeFourBedroom:  1800,
		entity.HomeSizeFivePlus:     2200,
		"5-bedroom":                 2200,
		"":                          2200,
	}

	for size, want := range tests {
		assert.Equal(t, want, BasePrice(size), "home size %q", size)
	}
}

func TestCalculate_InvalidZip(t *testing.T) {
	for _, zip := range []string{"", "1", "ab123", "1x234"} {
		_, err := Calculate(zip, "10001", "studio")
		assert.ErrorIs(t, err, ErrInvalidZip, "zip %q", zip)

		_, err = Calculate("10001", zip, "studio")
		assert.ErrorIs(t, err, ErrInvalidZip, "zip %q", zip)
	}
}

func TestEstimate_ApplyOverwritesClientValues(t *testing.T) {
	q := &entity.QuoteRequest{Distance: 1, BasePrice: 1, DistancePrice: 1, TotalEstimate: 99999}

	est, err := Calculate("08016", "10001", "2-bedroom")
	require.NoError(t, err)
	est.Apply(q)

	assert.Equal(t, 100, q.Distance)
	assert.Equal(t, 1000, q.BasePrice)
	assert.Equal(t, 200, q.DistancePrice)
	assert.Equal(t, 1200, q.TotalEstimate)
}
