package accent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Accent
	}{
		{"blue", Blue},
		{"Orange", Orange},
		{" purple ", Purple},
		{"teal", Teal},
		{"green", Green},
		{"INDIGO", Indigo},
		{"default", Default},
		{"", Default},
		{"magenta", Default},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestStyle(t *testing.T) {
	assert.Equal(t, "#3b82f6", Blue.Style().Background)
	assert.Equal(t, "#f97316", Orange.Style().Background)
	assert.Equal(t, "#ffffff", Indigo.Style().Text)
	assert.Equal(t, Default.Style(), Accent(99).Style())
}

func TestString_RoundTrip(t *testing.T) {
	for _, a := range []Accent{Default, Blue, Orange, Purple, Teal, Green, Indigo} {
		assert.Equal(t, a, Parse(a.String()))
	}
	assert.Equal(t, "default", Accent(-1).String())
}
