package valueobject

import (
	"fmt"
	"strings"
	"unicode"
)

// Phone is a Brazilian phone number in +55 E.164-like form: the +55 country
// code followed by 11 digits (2-digit area code + 9-digit mobile number).
type Phone struct {
	value string
}

const (
	phoneCountryPrefix = "+55"
	phoneDigitCount    = 11
)

// NewPhone normalizes and validates a phone number. Accepted inputs are the
// canonical "+55DDDDDDDDDDD" form or a bare national number with punctuation
// ("(11) 98765-4321"), which is normalized by stripping formatting and
// prefixing +55.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, fmt.Errorf("phone cannot be empty")
	}

	hasPrefix := strings.HasPrefix(trimmed, phoneCountryPrefix)
	if hasPrefix {
		trimmed = strings.TrimPrefix(trimmed, phoneCountryPrefix)
	}

	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == ' ' || r == '(' || r == ')' || r == '-':
			// formatting characters are discarded
		default:
			return Phone{}, fmt.Errorf("phone contains invalid character %q", r)
		}
	}

	national := digits.String()
	// Tolerate a 55 country code typed without the plus sign.
	if !hasPrefix && len(national) == phoneDigitCount+2 && strings.HasPrefix(national, "55") {
		national = national[2:]
	}
	if len(national) != phoneDigitCount {
		return Phone{}, fmt.Errorf("phone must have %d digits after the +55 country code, got %d", phoneDigitCount, len(national))
	}

	return Phone{value: phoneCountryPrefix + national}, nil
}

// String returns the canonical +55 form.
func (p Phone) String() string {
	return p.value
}

// IsZero returns true for the zero value.
func (p Phone) IsZero() bool {
	return p.value == ""
}
