package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFilter_Pass(t *testing.T) {
	tests := []struct {
		filter   string
		text     string
		expected bool
	}{
		{"", "Anything", true},
		{"health", "Max Health", true},
		{"HEALTH", "max health", true},
		{"armor", "Max Health", false},
		{"armor,health", "Max Health", true},
		{"-max", "Max Health", false},
		{"-max", "Speed", true},
		{"health,-max", "Max Health", false},
		{"health,-max", "Health Regen", true},
		{" , ", "Speed", true},
		{"-", "Speed", true},
	}

	for _, tt := range tests {
		t.Run(tt.filter+"/"+tt.text, func(t *testing.T) {
			f := NewTextFilter(tt.filter)
			assert.Equal(t, tt.expected, f.Pass(tt.text))
		})
	}
}

func TestTextFilter_IsActive(t *testing.T) {
	var nilFilter *TextFilter
	assert.False(t, nilFilter.IsActive())
	assert.True(t, nilFilter.Pass("x"))

	f := NewTextFilter("")
	assert.False(t, f.IsActive())

	f.Set("speed")
	assert.True(t, f.IsActive())
	assert.Equal(t, "speed", f.String())

	f.Set("")
	assert.False(t, f.IsActive())
}
