package objtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_String(t *testing.T) {
	p := Path{}.Child(0).Child(3).Branch(1).Child(2)

	assert.Equal(t, "0/3/b1/2", p.String())
	assert.Equal(t, 3, p.Depth())
	assert.Equal(t, "", Path{}.String())
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := Path{}.Child(1)
	a := base.Child(2)
	b := base.Child(5)

	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "1/5", b.String())
	assert.Equal(t, "1", base.String())
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"0/3/b1/2", true},
		{"", true},
		{"7", true},
		{"0/x", false},
		{"b", false},
		{"0/-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := ParsePath(tt.input)
			require.Equal(t, tt.ok, ok)

			if ok {
				assert.Equal(t, tt.input, p.String())
			}
		})
	}
}
