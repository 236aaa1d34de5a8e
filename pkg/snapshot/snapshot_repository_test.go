package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain title untouched", raw: "Pizza Margherita", want: "Pizza Margherita"},
		{name: "percent escaped", raw: "100% Integrale", want: `100\% Integrale`},
		{name: "underscore escaped", raw: "pane_speciale", want: `pane\_speciale`},
		{name: "backslash escaped first", raw: `torta \%`, want: `torta \\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.raw))
		})
	}
}
