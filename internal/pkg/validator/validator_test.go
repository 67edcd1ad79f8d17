package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@corp.test",
		"first.last@example.co.uk",
		"a+tag@sub.domain.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.test",
		"no-domain@",
		"spaces in@addr.test",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0198c3a1-7f2e-7abc-89ab-0123456789ab"))
	assert.True(t, IsValidUUID("0198C3A1-7F2E-7ABC-89AB-0123456789AB"), "case insensitive")
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("0198c3a17f2e7abc89ab0123456789ab"), "missing dashes")
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-01-06")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, 6, date.Day())

	_, ok = IsValidDate("06-01-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	assert.True(t, IsInSlice("b", slice))
	assert.False(t, IsInSlice("d", slice))
	assert.False(t, IsInSlice("b", nil))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "startDate", Message: "must be a YYYY-MM-DD date"},
		{Field: "type", Message: "unknown absence type"},
	}

	assert.Equal(t, "startDate: must be a YYYY-MM-DD date; type: unknown absence type", errs.Error())
	assert.Equal(t, map[string]string{
		"startDate": "must be a YYYY-MM-DD date",
		"type":      "unknown absence type",
	}, errs.ToMap())
}
