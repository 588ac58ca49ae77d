package auth

import (
	"context"
	"fmt"

	"github.com/user/changelog-api/apperror"
)

// msgBadCredentials is the sign-in rejection message; it does not say whether
// the username or the password was wrong.
const msgBadCredentials = "nope"

// UserStore is the slice of the credential store the auth service needs.
// Implementations report a taken username as an apperror ConflictError and an
// unknown username as an apperror NotFoundError.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// AuthService registers users and signs them in.
type AuthService struct {
	users  UserStore
	hasher *Hasher
	tokens *TokenService
	// decoy is compared against when the username is unknown so both
	// rejection paths cost one bcrypt comparison.
	decoy string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *Hasher, tokens *TokenService) (*AuthService, error) {
	decoy, err := hasher.Hash("decoy-password")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		decoy:  decoy,
	}, nil
}

// Register creates a new user and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req CredentialsRequest) (*TokenResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.users.CreateUser(ctx, req.Username, hash)
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// SignIn checks the credentials and returns a new token.
func (s *AuthService) SignIn(ctx context.Context, req CredentialsRequest) (*TokenResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.hasher.Compare(req.Password, s.decoy)
			return nil, apperror.NewAuthError(msgBadCredentials, nil)
		}
		return nil, err
	}

	if !s.hasher.Compare(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError(msgBadCredentials, nil)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *User) (*TokenResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", fmt.Errorf("user %s: %w", user.ID, err))
	}
	return &TokenResponse{Token: token}, nil
}
