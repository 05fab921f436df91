package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{18248, "18.248"},
		{1234567, "1.234.567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "input %d", tt.in)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.234,6", FormatFloat(1234.567, 1))
	assert.Equal(t, "5,4", FormatFloat(5.435, 1))
	// Zero precision falls back to integer formatting.
	assert.Equal(t, "1.235", FormatFloat(1234.6, 0))
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{18248, "18.248"},
		{2500000, "~2,5 miljoen"},
		{1200000000, "~1,2 miljard"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLarge(tt.in), "input %v", tt.in)
	}
}
