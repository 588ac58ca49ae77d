package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/logging"
	"github.com/user/changelog-api/pipeline"
)

// Messages returned by the gate. Missing and empty tokens are deliberately
// indistinguishable to the caller.
const (
	msgNotAuthorized = "not authorized"
	msgInvalidToken  = "invalid token"
)

// Verifier is what the gate needs from the token service.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// Gate returns the pipeline stage that authenticates a request from its
// `Authorization: Bearer <token>` header. On success the claims are attached
// to the request context; no store lookup happens.
func Gate(v Verifier) pipeline.Stage {
	return func(r *http.Request) (*http.Request, error) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			return nil, apperror.NewAuthError(msgNotAuthorized, nil)
		}

		claims, err := v.Verify(token)
		if err != nil {
			logging.FromContext(r.Context()).Warn("token verification failed",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			return nil, apperror.NewAuthError(msgInvalidToken, err)
		}

		return r.WithContext(NewContextWithClaims(r.Context(), *claims)), nil
	}
}

// JWTMiddleware wraps Gate as chi middleware.
func JWTMiddleware(v Verifier) func(next http.Handler) http.Handler {
	return pipeline.Middleware(Gate(v))
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
