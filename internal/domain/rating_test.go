package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		input   string
		want    Rating
		wantErr bool
	}{
		{input: "7", want: 7},
		{input: " 8.5 ", want: 8.5},
		{input: "1", want: 1},
		{input: "10", want: 10},
		{input: "11", wantErr: true},
		{input: "0.99", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "", wantErr: true},
		{input: "seven", wantErr: true},
		{input: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRating(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatingValidate(t *testing.T) {
	assert.NoError(t, Rating(5).Validate())
	assert.ErrorIs(t, Rating(0).Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Rating(10.01).Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Rating(math.NaN()).Validate(), ErrInvalidRating)
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "7/10", Rating(7).String())
	assert.Equal(t, "8.5/10", Rating(8.5).String())
}

func TestNewWatchEntryRejectsInvalidRating(t *testing.T) {
	_, err := NewWatchEntry("Dune", []int{878}, Rating(11))
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = NewWatchEntry("  ", []int{878}, Rating(7))
	assert.ErrorIs(t, err, ErrInvalidMovie)
}
