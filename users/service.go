// Package users owns the credential records: creating them, looking them up
// by username for sign-in, and serving the signed-in user's own profile.
package users

import (
	"context"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/db"
)

// UserService provides access to user records. It satisfies auth.UserStore.
type UserService struct {
	db db.Querier
}

// NewUserService creates a new UserService.
func NewUserService(q db.Querier) *UserService {
	return &UserService{db: q}
}

// CreateUser inserts a credential record. A taken username is a ConflictError.
func (s *UserService) CreateUser(ctx context.Context, username, passwordHash string) (*auth.User, error) {
	user := &auth.User{
		ID:           db.NewID(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	query := `INSERT INTO users (id, username, password)
              VALUES ($1, $2, $3)
              RETURNING created_at`
	err := s.db.QueryRow(ctx, query, user.ID, user.Username, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, "username") {
			return nil, apperror.NewConflictError("username already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user, including the password hash, by username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, db.NotFoundOr(err, "user", "get")
	}
	return &user, nil
}

// GetUserProfile retrieves the public profile of a user by id.
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	var p ProfileResponse
	query := `SELECT id, username, created_at,
                     (SELECT count(*) FROM products WHERE belongs_to_id = users.id)
              FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(&p.ID, &p.Username, &p.CreatedAt, &p.ProductCount)
	if err != nil {
		return nil, db.NotFoundOr(err, "user", "load profile of")
	}
	return &p, nil
}
