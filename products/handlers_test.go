package products

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/db"
)

// memProducts is an in-memory ProductService with the same owner scoping as
// the PostgreSQL implementation.
type memProducts struct {
	mu    sync.Mutex
	items map[string]Product
	order []string
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[string]Product{}}
}

func (m *memProducts) owned(ownerID, id string) (Product, error) {
	p, ok := m.items[id]
	if !ok || p.BelongsToID != ownerID {
		return Product{}, apperror.NewNotFoundError("product not found", nil)
	}
	return p, nil
}

func (m *memProducts) ListProducts(_ context.Context, ownerID string) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []Product{}
	for _, id := range m.order {
		if p, ok := m.items[id]; ok && p.BelongsToID == ownerID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *memProducts) GetProduct(_ context.Context, ownerID, id string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.owned(ownerID, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *memProducts) CreateProduct(_ context.Context, ownerID, name string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Product{ID: db.NewID(), CreatedAt: time.Now().UTC(), Name: name, BelongsToID: ownerID}
	m.items[p.ID] = p
	m.order = append(m.order, p.ID)
	return &p, nil
}

func (m *memProducts) UpdateProduct(_ context.Context, ownerID, id, name string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.owned(ownerID, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	m.items[id] = p
	return &p, nil
}

func (m *memProducts) DeleteProduct(_ context.Context, ownerID, id string) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.owned(ownerID, id)
	if err != nil {
		return nil, err
	}
	delete(m.items, id)
	return &p, nil
}

type testAPI struct {
	router http.Handler
	tokens *auth.TokenService
	store  *memProducts
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	tokens, err := auth.NewTokenService("products-test-secret", 0)
	require.NoError(t, err)

	store := newMemProducts()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(tokens))
		NewProductHandler(store).RegisterRoutes(r)
	})
	return &testAPI{router: r, tokens: tokens, store: store}
}

func (a *testAPI) do(t *testing.T, userID, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := a.tokens.Issue(userID, "user-"+userID[:8])
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeProduct(t *testing.T, rec *httptest.ResponseRecorder) Product {
	t.Helper()
	var resp ProductResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Data)
	return *resp.Data
}

func TestProducts_CRUD(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	owner := db.NewID()

	rec := api.do(t, owner, http.MethodPost, "/api/product", `{"name":"Widget"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeProduct(t, rec)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, owner, created.BelongsToID)

	rec = api.do(t, owner, http.MethodGet, "/api/product/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeProduct(t, rec).ID)

	rec = api.do(t, owner, http.MethodPut, "/api/product/"+created.ID, `{"name":"Gadget"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gadget", decodeProduct(t, rec).Name)

	rec = api.do(t, owner, http.MethodGet, "/api/product", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list ProductListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Gadget", list.Data[0].Name)

	rec = api.do(t, owner, http.MethodDelete, "/api/product/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeProduct(t, rec).ID)

	rec = api.do(t, owner, http.MethodGet, "/api/product/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProducts_OtherOwnersProductIsNotFound(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	alice, bob := db.NewID(), db.NewID()

	rec := api.do(t, bob, http.MethodPost, "/api/product", `{"name":"Bob's"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	bobs := decodeProduct(t, rec)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"name":"stolen"}`},
		{http.MethodDelete, ""},
	} {
		rec := api.do(t, alice, tc.method, "/api/product/"+bobs.ID, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)

		var body apperror.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "not_found", body.Error)
		assert.Equal(t, "product not found", body.Message)
	}

	rec = api.do(t, alice, http.MethodGet, "/api/product", "")
	var list ProductListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Empty(t, list.Data)

	p, err := api.store.GetProduct(context.Background(), bob, bobs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob's", p.Name)
}

func TestProducts_Validation(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	owner := db.NewID()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create without name", http.MethodPost, "/api/product", `{}`},
		{"create with numeric name", http.MethodPost, "/api/product", `{"name":5}`},
		{"update without name", http.MethodPut, "/api/product/" + db.NewID(), `{"title":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, owner, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body apperror.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "name", body.Errors[0].Field)
		})
	}
}

func TestProducts_RequireAuthAndValidID(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, "", http.MethodGet, "/api/product", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, db.NewID(), http.MethodGet, "/api/product/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProducts_LongNamesAreAccepted(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	owner := db.NewID()
	name := strings.Repeat("n", 1000)

	rec := api.do(t, owner, http.MethodPost, "/api/product", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeProduct(t, rec)
	assert.Equal(t, name, created.Name)

	rec = api.do(t, owner, http.MethodPut, "/api/product/"+created.ID, `{"name":"`+name+`!"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, name+"!", decodeProduct(t, rec).Name)
}
