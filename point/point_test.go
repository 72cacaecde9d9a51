package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected bool
	}{
		"identical":            {New(1, 2), New(1, 2), true},
		"different":            {New(1, 2), New(3, 4), false},
		"within tolerance":     {NewWithTolerance(1, 1, 0.1), New(1.05, 1), true},
		"outside tolerance":    {NewWithTolerance(1, 1, 0.01), New(1.05, 1), false},
		"tolerance from other": {New(1, 1), NewWithTolerance(1.05, 1, 0.1), true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Eq(tc.b))
		})
	}
}

func TestPoint_Less(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected bool
	}{
		"greater y precedes":       {New(5, 10), New(0, 5), true},
		"equal y smaller x":        {New(0, 5), New(1, 5), true},
		"equal y larger x":         {New(1, 5), New(0, 5), false},
		"lower y does not precede": {New(0, 4), New(0, 5), false},
		"equal points":             {New(1, 1), New(1, 1), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Less(tc.b))
		})
	}
}

func TestPoint_Compare_Antisymmetric(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	assert.Equal(t, -a.Compare(b), b.Compare(a))
}

func TestCollinear(t *testing.T) {
	assert.True(t, Collinear(New(0, 0), New(2, 0), New(1, 0)))
	assert.False(t, Collinear(New(0, 0), New(2, 0), New(1, 1)))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between(New(0, 0), New(2, 2), New(1, 1)))
	assert.False(t, Between(New(0, 0), New(2, 2), New(3, 3)))
}
