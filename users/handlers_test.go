package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
)

type stubProfiles map[string]*ProfileResponse

func (s stubProfiles) GetUserProfile(_ context.Context, userID string) (*ProfileResponse, error) {
	p, ok := s[userID]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return p, nil
}

func TestHandleGetProfile(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h := NewUserHandlers(stubProfiles{
		"u1": {ID: "u1", Username: "rick", CreatedAt: created, ProductCount: 2},
	})

	tests := []struct {
		name   string
		claims *auth.Claims
		status int
	}{
		{"signed in", &auth.Claims{ID: "u1", Username: "rick"}, http.StatusOK},
		{"deleted user", &auth.Claims{ID: "gone", Username: "x"}, http.StatusNotFound},
		{"no claims", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.NewContextWithClaims(req.Context(), *tt.claims))
			}
			rec := httptest.NewRecorder()
			h.HandleGetProfile()(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}
			var body ProfileEnvelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Data)
			assert.Equal(t, "rick", body.Data.Username)
			assert.Equal(t, int64(2), body.Data.ProductCount)
			assert.True(t, body.Data.CreatedAt.Equal(created))
		})
	}
}
