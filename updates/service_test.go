package updates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/db/dbtest"
	"github.com/user/changelog-api/products"
)

func TestUpdateAndPointServices_Postgres(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	updates := NewUpdateService(pool)
	points := NewPointService(pool)

	alice := dbtest.CreateUser(t, pool, "alice")
	bob := dbtest.CreateUser(t, pool, "bob")
	product, err := products.NewProductService(pool).CreateProduct(ctx, alice, "Widget")
	require.NoError(t, err)

	_, err = updates.CreateUpdate(ctx, bob, CreateUpdateRequest{Title: "t", Body: "b", ProductID: product.ID})
	require.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "product not found", err.Error())

	_, err = updates.CreateUpdate(ctx, alice, CreateUpdateRequest{Title: strings.Repeat("t", 1000), Body: "b", ProductID: product.ID})
	require.NoError(t, err, "titles are unbounded text")

	version := "1.0.0"
	u, err := updates.CreateUpdate(ctx, alice, CreateUpdateRequest{Title: "t", Body: "b", ProductID: product.ID, Version: &version})
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, u.Status)
	assert.Nil(t, u.Asset)

	live := StatusLive
	title := "Launch"
	edited, err := updates.EditUpdate(ctx, alice, u.ID, EditUpdateRequest{Title: &title, Status: &live})
	require.NoError(t, err)
	assert.Equal(t, "Launch", edited.Title)
	assert.Equal(t, "b", edited.Body)
	assert.Equal(t, StatusLive, edited.Status)
	require.NotNil(t, edited.Version)
	assert.Equal(t, "1.0.0", *edited.Version)

	_, err = updates.EditUpdate(ctx, bob, u.ID, EditUpdateRequest{Title: &title})
	assert.True(t, apperror.IsNotFound(err))

	_, err = points.CreatePoint(ctx, bob, CreatePointRequest{Name: "n", Description: "d", UpdateID: u.ID})
	assert.True(t, apperror.IsNotFound(err))
	pt, err := points.CreatePoint(ctx, alice, CreatePointRequest{Name: "n", Description: "d", UpdateID: u.ID})
	require.NoError(t, err)

	list, err := points.ListPoints(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = points.ListPoints(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	desc := "details"
	ept, err := points.EditPoint(ctx, alice, pt.ID, EditPointRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "n", ept.Name)
	assert.Equal(t, "details", ept.Description)

	_, err = updates.DeleteUpdate(ctx, bob, u.ID)
	assert.True(t, apperror.IsNotFound(err))
	_, err = updates.DeleteUpdate(ctx, alice, u.ID)
	require.NoError(t, err)
	_, err = points.GetPoint(ctx, alice, pt.ID)
	assert.True(t, apperror.IsNotFound(err))
}
