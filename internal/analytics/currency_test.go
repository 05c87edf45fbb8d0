package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.399", "12.39"},
		{"0", "0"},
		{"0.009", "0"},
		{"5", "5"},
		{"99.999999", "99.99"},
		{"-12.399", "-12.39"},
		{"-0.001", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Truncate(dec(tt.in))
			assert.True(t, dec(tt.want).Equal(got), "Truncate(%s) = %s", tt.in, got)
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total string
		want        string
	}{
		{"30", "30", "100"},
		{"10", "30", "33"},
		{"20", "30", "66"},
		{"0.5", "1000", "0"},
		{"1", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.part+"/"+tt.total, func(t *testing.T) {
			got := Percentage(dec(tt.part), dec(tt.total))
			assert.True(t, dec(tt.want).Equal(got), "Percentage(%s, %s) = %s", tt.part, tt.total, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "30.00", FormatMoney(dec("30")))
	assert.Equal(t, "12.39", FormatMoney(dec("12.399")))
	assert.Equal(t, "0.00", FormatMoney(dec("0")))
}
