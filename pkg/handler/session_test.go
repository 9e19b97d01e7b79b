package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foomo/contentadmin/pkg/handler"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := handler.Session(zaptest.NewLogger(t), "")(next)

	tests := []struct {
		name   string
		modify func(r *http.Request)
		want   int
	}{
		{
			name:   "no marker",
			modify: func(r *http.Request) {},
			want:   http.StatusFound,
		},
		{
			name: "cookie",
			modify: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: "true"})
			},
			want: http.StatusNoContent,
		},
		{
			name: "cookie false",
			modify: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: "false"})
			},
			want: http.StatusFound,
		},
		{
			name: "header",
			modify: func(r *http.Request) {
				r.Header.Set(handler.SessionHeaderName, "true")
			},
			want: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contentadmin/getStats", nil)
			tt.modify(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusFound {
				assert.Equal(t, "/contentadmin/"+handler.DefaultLoginURL, rec.Header().Get("Location"))
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := handler.CORS([]string{"https://console.example.com"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/contentadmin/getStats", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://console.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
