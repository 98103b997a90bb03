package domain

import (
	"unicode/utf8"

	perr "chargemap/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// Rating bounds
const (
	MinValue          = 1
	MaxValue          = 5
	DefaultCommentMax = 500
)

// error fields
const (
	FieldRatingValue = "rating_value"
	FieldComment     = "comment"
)

// ValidateValue checks MinValue <= v <= MaxValue
func ValidateValue(v int) error {
	if v < MinValue || v > MaxValue {
		return perr.Validationf(FieldRatingValue, "rating value must be between %d and %d, got %d", MinValue, MaxValue, v)
	}
	return nil
}

// NormalizeComment returns the NFC form of s when it fits in max code points
// max <= 0 means DefaultCommentMax
func NormalizeComment(s string, max int) (string, error) {
	if max <= 0 {
		max = DefaultCommentMax
	}
	s = norm.NFC.String(s)
	if n := utf8.RuneCountInString(s); n > max {
		return "", perr.Validationf(FieldComment, "comment must be at most %d characters, got %d", max, n)
	}
	return s, nil
}

// IsInvalidRatingValue reports whether err rejected a rating value
func IsInvalidRatingValue(err error) bool {
	return perr.IsCode(err, perr.ErrorCodeValidation) && perr.FieldOf(err) == FieldRatingValue
}

// IsCommentTooLong reports whether err rejected a comment
func IsCommentTooLong(err error) bool {
	return perr.IsCode(err, perr.ErrorCodeValidation) && perr.FieldOf(err) == FieldComment
}
