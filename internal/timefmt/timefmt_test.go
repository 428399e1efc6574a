package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0:00", 0, true},
		{"1:23", 83, true},
		{"1:02:03", 3723, true},
		{"45", 45, true},
		{"12.5", 12.5, true},
		{"0:07,25", 7.25, true},
		{"  2:00 ", 120, true},
		{"", 0, false},
		{"Chapter 1", 0, false},
		{"1:xx", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeconds(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, secs := range []float64{0, 59, 60, 83, 3599, 3723} {
		got, ok := ParseSeconds(Format(secs))
		assert.True(t, ok)
		assert.InDelta(t, secs, got, 1e-9)
	}
	assert.Equal(t, "1:02:03", Format(3723.9))
	assert.Equal(t, "0:00", Format(-4))
}
