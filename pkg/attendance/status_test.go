package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"present", StatusPresent},
		{"P", StatusPresent},
		{" Present ", StatusPresent},
		{"checked-in", StatusCheckedIn},
		{"Checked In", StatusCheckedIn},
		{"checkedout", StatusCheckedOut},
		{"CHECKED-OUT", StatusCheckedOut},
		{"l", StatusLate},
		{"Late", StatusLate},
		{"a", StatusAbsent},
		{"absent", StatusAbsent},
		{"Half Day", StatusHalfDay},
		{"halfday", StatusHalfDay},
		{"on leave", StatusOnLeave},
		{"leave", StatusOnLeave},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.input), "Normalize(%q)", c.input)
	}
}

func TestNormalizeUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "vacation", Normalize(" Vacation "))
}

func TestCountsAsPresent(t *testing.T) {
	assert.True(t, CountsAsPresent("present"))
	assert.True(t, CountsAsPresent("Checked-In"))
	assert.True(t, CountsAsPresent("checked out"))
	assert.False(t, CountsAsPresent("late"))
	assert.False(t, CountsAsPresent("absent"))
	assert.False(t, CountsAsPresent(""))
}

func TestIsLateAndIsAbsent(t *testing.T) {
	assert.True(t, IsLate("L"))
	assert.True(t, IsAbsent("a"))
	assert.False(t, IsLate("present"))
	assert.False(t, IsAbsent("checked-in"))
}
