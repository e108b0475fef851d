package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMSISDN(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "local with leading zero",
			input:    "0712345678",
			expected: "254712345678",
		},
		{
			name:     "already international",
			input:    "254712345678",
			expected: "254712345678",
		},
		{
			name:     "local without leading zero",
			input:    "712345678",
			expected: "254712345678",
		},
		{
			name:     "with spaces",
			input:    "0712 345 678",
			expected: "254712345678",
		},
		{
			name:     "with plus and country code",
			input:    "+254712345678",
			expected: "254712345678",
		},
		{
			name:     "with dashes",
			input:    "0712-345-678",
			expected: "254712345678",
		},
		{
			name:     "new mobile range",
			input:    "0110345678",
			expected: "254110345678",
		},
		{
			name:    "too short",
			input:   "071234567",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "07123456789",
			wantErr: true,
		},
		{
			name:    "landline range",
			input:   "0201234567",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "07123A5678",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := NormalizeMSISDN(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, normalized)
		})
	}
}
