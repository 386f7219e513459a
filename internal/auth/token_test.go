package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	tests := []struct {
		name   string
		cookie *string
		header string
		want   string
	}{
		{name: "cookie wins over header", cookie: ptr("from-cookie"), header: "Bearer from-header", want: "from-cookie"},
		{name: "header only", header: "Bearer from-header", want: "from-header"},
		{name: "empty cookie falls back", cookie: ptr(""), header: "Bearer from-header", want: "from-header"},
		{name: "scheme is case insensitive", header: "bearer from-header", want: "from-header"},
		{name: "surrounding space trimmed", header: "Bearer   from-header  ", want: "from-header"},
		{name: "basic auth ignored", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "scheme without token", header: "Bearer", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.cookie != nil {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: *tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractAccessToken(req))
		})
	}
}

func ptr(s string) *string { return &s }
