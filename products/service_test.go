package products

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/db"
	"github.com/user/changelog-api/db/dbtest"
)

func TestProductService_Postgres(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	svc := NewProductService(pool)

	alice := dbtest.CreateUser(t, pool, "alice")
	bob := dbtest.CreateUser(t, pool, "bob")

	p, err := svc.CreateProduct(ctx, alice, "Widget")
	require.NoError(t, err)
	assert.Equal(t, alice, p.BelongsToID)

	_, err = svc.GetProduct(ctx, bob, p.ID)
	assert.True(t, apperror.IsNotFound(err))
	_, err = svc.UpdateProduct(ctx, bob, p.ID, "mine now")
	assert.True(t, apperror.IsNotFound(err))
	_, err = svc.DeleteProduct(ctx, bob, p.ID)
	assert.True(t, apperror.IsNotFound(err))

	updated, err := svc.UpdateProduct(ctx, alice, p.ID, "Gadget")
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)

	list, err := svc.ListProducts(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	empty, err := svc.ListProducts(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.DeleteProduct(ctx, alice, p.ID)
	require.NoError(t, err)
	_, err = svc.GetProduct(ctx, alice, p.ID)
	assert.True(t, apperror.IsNotFound(err))

	long, err := svc.CreateProduct(ctx, alice, strings.Repeat("x", 1000))
	require.NoError(t, err, "names are unbounded text")
	assert.Len(t, long.Name, 1000)

	_, err = svc.GetProduct(ctx, alice, db.NewID())
	assert.True(t, apperror.IsNotFound(err))
}
