package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			"Lowercase",
			"john@example.com",
			"https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm",
		},
		{
			"Mixed Case Normalized",
			"John@Example.COM",
			"https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm",
		},
		{
			"Surrounding Whitespace Trimmed",
			"  john@example.com  ",
			"https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URL(tt.email))
		})
	}
}
