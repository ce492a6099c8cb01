package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRouteToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{
			name:   "bare address",
			header: "abc123@reports.example.com",
			token:  "abc123",
			ok:     true,
		},
		{
			name:   "subaddress tag excluded",
			header: "abc123+dmarc@reports.example.com",
			token:  "abc123",
			ok:     true,
		},
		{
			name:   "display name form",
			header: "DMARC Reports <abc123@reports.example.com>",
			token:  "abc123",
			ok:     true,
		},
		{
			name:   "first address of a list",
			header: "abc123@reports.example.com, other@elsewhere.com",
			token:  "abc123",
			ok:     true,
		},
		{
			name:   "surrounding whitespace",
			header: "  abc123@reports.example.com  ",
			token:  "abc123",
			ok:     true,
		},
		{
			name:   "missing header",
			header: "",
			token:  "",
			ok:     false,
		},
		{
			name:   "no at sign",
			header: "not-an-address",
			token:  "",
			ok:     false,
		},
		{
			name:   "empty local part",
			header: "@reports.example.com",
			token:  "",
			ok:     false,
		},
		{
			name:   "plus before any token characters",
			header: "+tag@reports.example.com",
			token:  "",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ExtractRouteToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}
