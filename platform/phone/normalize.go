// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers entered without a country prefix.
const DefaultRegion = "NL"

// ErrInvalidNumber is returned when input cannot be parsed as a valid number.
var ErrInvalidNumber = errors.New("invalid phone number")

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	normalized, err := ParseE164(input, DefaultRegion)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return normalized
}

// ParseE164 parses input for the given region and returns it in E.164 form.
// An empty input yields an empty result and no error.
func ParseE164(input, region string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}
	if region == "" {
		region = DefaultRegion
	}

	number, err := phonenumbers.Parse(trimmed, strings.ToUpper(region))
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(number) {
		return "", ErrInvalidNumber
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
