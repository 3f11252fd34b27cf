package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// Monetary values are handled as int64 kobo internally and rendered as
// naira strings with exactly two decimal places. The payment gateway
// speaks kobo (minor units); stored records and API responses speak
// naira strings so no precision is lost in JSON.

// MaxDecimalPlaces is the maximum number of decimal places accepted in a
// naira amount string.
const MaxDecimalPlaces = 2

// ParseNaira validates a naira amount string and converts it to kobo.
// "10" and "10.5" are normalized to "10.00" / "10.50" before conversion.
func ParseNaira(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var digits string
	if len(parts) == 1 {
		digits = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			digits = parts[0] + "00"
		case 1:
			digits = parts[0] + parts[1] + "0"
		case 2:
			digits = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return value, nil
}

// KoboToNaira converts an integer kobo amount to a naira string.
// 101500 becomes "1015.00", 1015 becomes "10.15".
func KoboToNaira(kobo int64) string {
	negative := kobo < 0
	if negative {
		kobo = -kobo
	}

	s := strconv.FormatInt(kobo, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	split := len(s) - 2
	whole, frac := s[:split], s[split:]
	if negative {
		return "-" + whole + "." + frac
	}
	return whole + "." + frac
}

// NormalizeNaira re-renders a naira amount string with exactly two
// decimal places, returning an error for malformed input.
func NormalizeNaira(amount string) (string, error) {
	kobo, err := ParseNaira(amount)
	if err != nil {
		return "", err
	}
	return KoboToNaira(kobo), nil
}
