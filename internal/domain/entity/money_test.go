package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

func TestParseNaira(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"1000", 100000},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{"  25.50  ", 2550},
			{"10.", 1000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				kobo, err := ParseNaira(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, kobo)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"N100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseNaira(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestKoboToNaira(t *testing.T) {
	testCases := []struct {
		kobo     int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{1015, "10.15"},
		{101500, "1015.00"},
		{88500, "885.00"},
		{-2550, "-25.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, KoboToNaira(tc.kobo))
		})
	}
}

func TestNormalizeNaira(t *testing.T) {
	t.Run("Normalizes short forms", func(t *testing.T) {
		for input, expected := range map[string]string{
			"10":    "10.00",
			"10.5":  "10.50",
			"10.50": "10.50",
		} {
			got, err := NormalizeNaira(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		_, err := NormalizeNaira("not-money")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestParseAndRenderRoundTrip(t *testing.T) {
	// Parsing a rendered value must reproduce the kobo amount exactly.
	for _, kobo := range []int64{0, 1, 99, 100, 2550, 100000, 123456789} {
		parsed, err := ParseNaira(KoboToNaira(kobo))
		assert.NoError(t, err)
		assert.Equal(t, kobo, parsed)
	}
}
