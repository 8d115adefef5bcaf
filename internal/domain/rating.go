package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rating bounds (inclusive)
const (
	MinRating = 1.0
	MaxRating = 10.0
)

// Rating is the user's score for a watched movie
type Rating float64

// NewRating validates a rating value
func NewRating(v float64) (Rating, error) {
	r := Rating(v)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// ParseRating parses user input such as "7" or "8.5"
func ParseRating(input string) (Rating, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRating, input)
	}
	return NewRating(v)
}

// Validate reports ErrInvalidRating when the rating is outside [1,10]
func (r Rating) Validate() error {
	v := float64(r)
	if math.IsNaN(v) || v < MinRating || v > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// String formats the rating as "7/10" or "8.5/10"
func (r Rating) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64) + "/10"
}
