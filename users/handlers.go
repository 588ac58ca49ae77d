package users

import (
	"context"
	"net/http"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
)

// ProfileGetter is what the profile handler needs from the user service.
type ProfileGetter interface {
	GetUserProfile(ctx context.Context, userID string) (*ProfileResponse, error)
}

// UserHandlers provides HTTP handlers for the signed-in user.
type UserHandlers struct {
	service ProfileGetter
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service ProfileGetter) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile of the authenticated caller.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileEnvelope
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /api/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			apperror.WriteError(w, r, apperror.NewAuthError("not authorized", nil))
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), claims.ID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, ProfileEnvelope{Data: profile})
	}
}
