package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "oauth2-proxy user header takes precedence",
			headers:  map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com"},
			expected: "alice",
		},
		{
			name:     "falls back to email",
			headers:  map[string]string{"X-Forwarded-Email": "bob@example.com"},
			expected: "bob@example.com",
		},
		{
			name:     "kube-rbac-proxy remote user",
			headers:  map[string]string{"X-Remote-User": "system:operator"},
			expected: "system:operator",
		},
		{
			name:     "no headers defaults to api-client",
			headers:  nil,
			expected: "api-client",
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.expected, extractAuthor(c))
		})
	}
}
