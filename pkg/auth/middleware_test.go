package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(string)
		assert.Equal(t, "user-1", userID)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		authHeader   func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT("user-1", false, time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "No bearer prefix",
			authHeader:   func() string { return "Token abc" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT("user-1", false, time.Now().Add(-time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/user/fundraising", nil)
			if header := tt.authHeader(); header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		ctx          func(ctx context.Context) context.Context
		expectedCode int
	}{
		{
			name: "Admin passes",
			ctx: func(ctx context.Context) context.Context {
				return context.WithValue(ctx, IsAdminKey, true)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Regular user rejected",
			ctx: func(ctx context.Context) context.Context {
				return context.WithValue(ctx, IsAdminKey, false)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "No claim at all",
			ctx:          func(ctx context.Context) context.Context { return ctx },
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/fundraising", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			rr := httptest.NewRecorder()

			AdminMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
