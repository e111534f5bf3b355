package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		keepsID bool
	}{
		{name: "no header", header: "", keepsID: false},
		{name: "caller id", header: "abc-123", keepsID: true},
		{name: "too long", header: strings.Repeat("a", 65), keepsID: false},
		{name: "control characters", header: "abc\x01def", keepsID: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			var ctxLogger *zerolog.Logger
			handler := RequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
				ctxLogger = zerolog.Ctx(r.Context())
				w.WriteHeader(http.StatusTeapot)
			}))

			req := httptest.NewRequest(http.MethodPost, "/ticticpou.v1.RankingService/GetLeaderboard", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			require.NotNil(t, ctxLogger)

			if tt.keepsID {
				assert.Equal(t, tt.header, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
