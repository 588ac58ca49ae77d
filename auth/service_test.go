package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/changelog-api/apperror"
)

// memUsers is an in-memory UserStore with the same error contract as the postgres store.
type memUsers struct {
	mu     sync.Mutex
	byName map[string]*User
}

func newMemUsers() *memUsers {
	return &memUsers{byName: map[string]*User{}}
}

func (m *memUsers) CreateUser(_ context.Context, username, hash string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byName[username]; taken {
		return nil, apperror.NewConflictError("username already exists", nil)
	}
	u := &User{ID: uuid.NewString(), Username: username, PasswordHash: hash, CreatedAt: time.Now()}
	m.byName[username] = u
	return u, nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return u, nil
}

func newTestService(t *testing.T) (*AuthService, *TokenService, *memUsers) {
	t.Helper()
	hasher, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens := newTestTokens(t, "secret", 0)
	store := newMemUsers()
	svc, err := NewAuthService(store, hasher, tokens)
	require.NoError(t, err)
	return svc, tokens, store
}

func TestAuthService_RegisterThenSignIn(t *testing.T) {
	t.Parallel()

	svc, tokens, store := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, CredentialsRequest{Username: "rick", Password: "cheese"})
	require.NoError(t, err)

	claims, err := tokens.Verify(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, "rick", claims.Username)
	assert.Equal(t, store.byName["rick"].ID, claims.ID)
	assert.NotEqual(t, "cheese", store.byName["rick"].PasswordHash)

	in, err := svc.SignIn(ctx, CredentialsRequest{Username: "rick", Password: "cheese"})
	require.NoError(t, err)
	claims, err = tokens.Verify(in.Token)
	require.NoError(t, err)
	assert.Equal(t, store.byName["rick"].ID, claims.ID)
}

func TestAuthService_SignInRejections(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, CredentialsRequest{Username: "rick", Password: "cheese"})
	require.NoError(t, err)

	for _, req := range []CredentialsRequest{
		{Username: "rick", Password: "wrong"},
		{Username: "nobody", Password: "cheese"},
	} {
		_, err := svc.SignIn(ctx, req)
		require.Error(t, err)
		assert.True(t, apperror.IsAuthError(err))
		assert.Equal(t, "nope", err.Error())
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, CredentialsRequest{Username: "rick", Password: "a"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, CredentialsRequest{Username: "rick", Password: "b"})
	assert.True(t, apperror.IsConflictError(err))
}

func TestHandlers_SignInAndRegister(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	h := NewHandlers(svc)

	post := func(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		return rec
	}

	rec := post(h.HandleRegister(), `{"username":"rick2","password":"cheese"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var tok TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tok))
	assert.NotEmpty(t, tok.Token)

	rec = post(h.HandleSignIn(), `{"username":"rick2","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body apperror.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "nope", body.Message)

	rec = post(h.HandleSignIn(), `{"username":"rick2","password":"cheese"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(h.HandleRegister(), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
