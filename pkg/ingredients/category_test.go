package ingredients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "pizza", want: "Pizze"},
		{raw: "PIZZAS", want: "Pizze"},
		{raw: "Primi Piatti", want: "Primi"},
		{raw: "dolci", want: "Dessert"},
		{raw: "Street Food", want: "Street Food"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCategory(tt.raw))
	}
}
