package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/changelog-api/apperror"
)

// Handlers wraps the AuthService to provide the public HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user and returns a bearer token for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body auth.CredentialsRequest true "Username and password"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} apperror.ErrorResponse "Username already taken"
// @Failure 500 {object} apperror.ErrorResponse
// @Router /user [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, resp)
	}
}

// HandleSignIn godoc
// @Summary Sign in
// @Description Exchanges a username and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body auth.CredentialsRequest true "Username and password"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Router /signin [post]
func (h *Handlers) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		resp, err := h.service.SignIn(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, resp)
	}
}
