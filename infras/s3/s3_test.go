package s3_test

import (
	"testing"

	"libraryhub/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name      string
		domain    string
		objectKey string
		expected  string
	}{
		{
			name:      "plain join",
			domain:    "https://cdn.example.com",
			objectKey: "exports/bookings/lib-1.json",
			expected:  "https://cdn.example.com/exports/bookings/lib-1.json",
		},
		{
			name:      "trailing and leading slashes",
			domain:    "https://cdn.example.com/",
			objectKey: "/exports/lib-1.json",
			expected:  "https://cdn.example.com/exports/lib-1.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.PublicURL(tt.domain, tt.objectKey))
		})
	}
}
