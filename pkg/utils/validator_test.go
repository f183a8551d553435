package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Zip      string `json:"zip" validate:"required,zipcode"`
	MoveDate string `json:"moveDate" validate:"required,isodate"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Zip: "08016", MoveDate: "2026-04-15", Email: "a@b.co"}))
	assert.Nil(t, ValidateStruct(sample{Zip: "08016-1234", MoveDate: "2026-04-15T10:00:00Z", Email: "a@b.co"}))

	errs := ValidateStruct(sample{Zip: "8016", MoveDate: "15/04/2026", Email: ""})
	assert.Equal(t, []FieldError{
		{Field: "zip", Message: "Must be a 5-digit ZIP code"},
		{Field: "moveDate", Message: "Must be a date in YYYY-MM-DD format"},
		{Field: "email", Message: "This field is required"},
	}, errs)
}

func TestZipCode(t *testing.T) {
	for zip, ok := range map[string]bool{
		"08016":      true,
		"10001-0001": true,
		"1000":       false,
		"1000a":      false,
		"100011":     false,
		"ab":         false,
	} {
		errs := ValidateStruct(sample{Zip: zip, MoveDate: "2026-01-01", Email: "a@b.co"})
		assert.Equal(t, ok, errs == nil, zip)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, ok := NormalizeDate("2026-04-15T23:30:00-05:00")
	assert.True(t, ok)
	assert.Equal(t, "2026-04-15", got)

	got, ok = NormalizeDate(" 2026-04-15 ")
	assert.True(t, ok)
	assert.Equal(t, "2026-04-15", got)

	_, ok = NormalizeDate("2026-02-30")
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-1", "1.5"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}
