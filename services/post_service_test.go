package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMorePosts(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		returned int
		total    int
		want     bool
	}{
		{"first of several pages", 1, 10, 10, 25, true},
		{"middle page", 2, 10, 10, 25, true},
		{"last partial page", 3, 10, 5, 25, false},
		{"exact last page", 2, 10, 10, 20, false},
		{"single page", 1, 10, 4, 4, false},
		{"empty result set", 1, 10, 0, 0, false},
		{"page past the end", 5, 10, 0, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMorePosts(tt.page, tt.limit, tt.returned, tt.total))
		})
	}
}
