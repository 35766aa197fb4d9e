package validate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selmore/internal/core/domain"
)

func TestRequired(t *testing.T) {
	err := Required(
		Field{"name", "Ann"},
		Field{"email", " "},
		Field{"password", ""},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Missing required fields: email, password", err.Error())

	assert.NoError(t, Required(Field{"name", "Ann"}))
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"owner@x.com", "a.b+c@example.co.uk"} {
		assert.NoError(t, Email(ok), ok)
	}
	for _, bad := range []string{"", "owner", "owner@", "@x.com", "owner@x", "Bob <bob@x.com>", "a b@x.com", "owner@x.com."} {
		assert.ErrorIs(t, Email(bad), domain.ErrValidation, bad)
	}
}

func TestPassword(t *testing.T) {
	assert.ErrorIs(t, Password("short"), domain.ErrValidation)
	assert.NoError(t, Password("password123"))
	assert.NoError(t, Password("12345678"))
	assert.NoError(t, Password(strings.Repeat("a", MaxPasswordLength)))
	assert.EqualError(t, Password(strings.Repeat("a", MaxPasswordLength+1)), "Password must be at most 72 bytes long")
	// multi-byte runes count by byte
	assert.ErrorIs(t, Password(strings.Repeat("é", 40)), domain.ErrValidation)
}

func TestNumbers(t *testing.T) {
	n, err := Number(" 800.5 ", "price")
	require.NoError(t, err)
	assert.Equal(t, 800.5, n)

	_, err = Number("abc", "price")
	assert.EqualError(t, err, "price must be a valid number")

	_, err = Number("NaN", "price")
	assert.Error(t, err)

	assert.NoError(t, Range(5, 0, 5, "x"))
	assert.EqualError(t, Range(5.1, 0, 5, "x"), "x must be between 0 and 5")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
		msg  string
	}{
		{name: "plain", in: 800, want: 800},
		{name: "rounds to cents", in: 19.999, want: 20},
		{name: "keeps cents", in: 0.01, want: 0.01},
		{name: "largest amount", in: MaxMoney, want: MaxMoney},
		{name: "zero", in: 0, msg: "price must be greater than 0"},
		{name: "negative", in: -5, msg: "price must be greater than 0"},
		{name: "rounds to zero", in: 0.004, msg: "price must be between 0.01 and 999999999999.99"},
		{name: "too large", in: 1e12, msg: "price must be between 0.01 and 999999999999.99"},
		{name: "infinite", in: math.Inf(1), msg: "price must be a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Money(tt.in, "price")
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("direct", "bookingType", "direct", "bidding"))
	assert.EqualError(t, OneOf("auction", "bookingType", "direct", "bidding"),
		"Invalid bookingType. Must be one of: direct, bidding")
}
