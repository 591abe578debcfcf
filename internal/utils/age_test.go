package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected int
	}{
		{
			name:     "day before birthday",
			at:       time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC),
			expected: 29,
		},
		{
			name:     "on birthday",
			at:       time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC),
			expected: 30,
		},
		{
			name:     "day after birthday",
			at:       time.Date(2020, 6, 16, 0, 0, 0, 0, time.UTC),
			expected: 30,
		},
		{
			name:     "earlier month",
			at:       time.Date(2020, 5, 20, 0, 0, 0, 0, time.UTC),
			expected: 29,
		},
		{
			name:     "later month",
			at:       time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC),
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeAt(dob, tt.at))
		})
	}
}

func TestAgeAroundThirtyYearBoundary(t *testing.T) {
	today := time.Now()

	// Born 30 years and a day ago: birthday already passed
	assert.Equal(t, 30, AgeAt(today.AddDate(-30, 0, -1), today))
	// Born a day short of 30 years ago: birthday still ahead
	assert.Equal(t, 29, AgeAt(today.AddDate(-30, 0, 1), today))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Cardiovascular", Title("cardiovascular"))
	assert.Equal(t, "Cardiovascular", Title("CARDIOVASCULAR"))
	assert.Equal(t, "John", Title("john"))
	assert.Equal(t, "Mary Jane", Title("mary jane"))
}
