package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		token string
		want  time.Weekday
		ok    bool
	}{
		{"Monday", time.Monday, true},
		{"monday", time.Monday, true},
		{"MONDAY", time.Monday, true},
		{"Mon", time.Monday, true},
		{"mon", time.Monday, true},
		{"1", time.Monday, true},
		{"Sunday", time.Sunday, true},
		{"sun", time.Sunday, true},
		{"0", time.Sunday, true},
		{"7", time.Sunday, true},
		{"Wednesday", time.Wednesday, true},
		{"wed", time.Wednesday, true},
		{"3", time.Wednesday, true},
		{"Saturday", time.Saturday, true},
		{"6", time.Saturday, true},
		{"", time.Sunday, false},
		{"Funday", time.Sunday, false},
		{"8", time.Sunday, false},
		{"12", time.Sunday, false},
		{"M", time.Sunday, false},
	}

	for _, tc := range cases {
		got, ok := ParseWeekday(tc.token)
		assert.Equal(t, tc.ok, ok, "token %q recognized", tc.token)
		if tc.ok {
			assert.Equal(t, tc.want, got, "token %q canonical value", tc.token)
		}
	}
}

func TestParseWeekdaySameDayTokensAgree(t *testing.T) {
	// Every spelling of the same day must canonicalize identically.
	groups := [][]string{
		{"Monday", "monday", "Mon", "mon", "1"},
		{"Sunday", "sunday", "Sun", "sun", "0", "7"},
		{"Friday", "fri", "5"},
	}
	for _, group := range groups {
		first, ok := ParseWeekday(group[0])
		assert.True(t, ok)
		for _, token := range group[1:] {
			got, ok := ParseWeekday(token)
			assert.True(t, ok, "token %q", token)
			assert.Equal(t, first, got, "token %q disagrees with %q", token, group[0])
		}
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(time.Sunday))
	assert.Equal(t, "Wednesday", WeekdayName(time.Wednesday))
}
