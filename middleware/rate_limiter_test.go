package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded chain uses first entry",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip when no forwarded header",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Real-IP": "203.0.113.8"},
			want:       "203.0.113.8",
		},
		{
			name:       "remote addr with port stripped",
			remoteAddr: "192.0.2.5:51234",
			want:       "192.0.2.5",
		},
		{
			name:       "remote addr without port kept",
			remoteAddr: "192.0.2.5",
			want:       "192.0.2.5",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := requestContext(t, tc.remoteAddr, tc.headers)
			if got := clientIP(c); got != tc.want {
				t.Errorf("clientIP() = %q; want %q", got, tc.want)
			}
		})
	}
}
