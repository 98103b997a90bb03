package domain

import (
	"strings"

	perr "chargemap/internal/platform/errors"
)

// PostalCodeLength is the only accepted postal code length
const PostalCodeLength = 5

// FieldPostalCode is the error field for postal code failures
const FieldPostalCode = "postal_code"

// DefaultPrefixes are the Berlin postal areas
var DefaultPrefixes = []string{"10", "12", "13"}

// PostalCode is a validated postal code
// the zero value is not a valid code; build one with NewPostalCode or a PostalPolicy
type PostalCode struct{ v string }

// String returns the raw code
func (p PostalCode) String() string { return p.v }

// IsZero reports whether p was never validated
func (p PostalCode) IsZero() bool { return p.v == "" }

// PostalPolicy decides which postal areas are served
type PostalPolicy struct {
	Prefixes []string `yaml:"prefixes"`
}

// DefaultPolicy serves DefaultPrefixes
func DefaultPolicy() PostalPolicy {
	return PostalPolicy{Prefixes: append([]string(nil), DefaultPrefixes...)}
}

// Parse validates raw against the policy
// raw is not trimmed
func (p PostalPolicy) Parse(raw string) (PostalCode, error) {
	if len(raw) != PostalCodeLength {
		return PostalCode{}, invalidPostalCode(raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return PostalCode{}, invalidPostalCode(raw)
		}
	}
	prefixes := p.Prefixes
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	for _, pre := range prefixes {
		if pre != "" && strings.HasPrefix(raw, pre) {
			return PostalCode{v: raw}, nil
		}
	}
	return PostalCode{}, invalidPostalCode(raw)
}

// Accepts reports whether raw would parse
func (p PostalPolicy) Accepts(raw string) bool {
	_, err := p.Parse(raw)
	return err == nil
}

// NewPostalCode validates raw against the default policy
func NewPostalCode(raw string) (PostalCode, error) { return DefaultPolicy().Parse(raw) }

func invalidPostalCode(raw string) error {
	return perr.Validationf(FieldPostalCode, "%q is not a valid postal code", raw)
}

// IsInvalidPostalCode reports whether err is a postal code validation failure
func IsInvalidPostalCode(err error) bool {
	return perr.IsCode(err, perr.ErrorCodeValidation) && perr.FieldOf(err) == FieldPostalCode
}
