package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHours(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"8h", 8, true},
		{"8.5h", 8.5, true},
		{"8h 15m", 8.25, true},
		{"8 hours", 8, true},
		{"0h 30m", 0.5, true},
		{"-", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"pending", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseHours(c.input)
		assert.Equal(t, c.ok, ok, "ParseHours(%q) ok", c.input)
		assert.InDelta(t, c.want, got, 0.001, "ParseHours(%q)", c.input)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8h 15m", FormatHours(8*time.Hour+15*time.Minute))
	assert.Equal(t, "0h 45m", FormatHours(45*time.Minute))
	assert.Equal(t, "0h 0m", FormatHours(-time.Hour))
}

func TestParseFormatRoundTrip(t *testing.T) {
	hours, ok := ParseHours(FormatHours(7*time.Hour + 30*time.Minute))
	assert.True(t, ok)
	assert.InDelta(t, 7.5, hours, 0.001)
}
