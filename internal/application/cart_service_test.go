package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
)

func seededCartService(t *testing.T) (*CartService, *fakeCartRepo) {
	t.Helper()
	carts := newFakeCartRepo()
	products := newFakeProductRepo()
	require.NoError(t, products.Create(context.Background(), productFixture("keyboard", "74.50")))
	_, err := carts.CreateForUser(context.Background(), 1)
	require.NoError(t, err)
	return NewCartService(carts, products), carts
}

func TestCartAddSameProductTwiceKeepsTwoLines(t *testing.T) {
	svc, _ := seededCartService(t)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, 1, 1, 3)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := svc.ItemsForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
}

func TestCartAddItemRejectsUnknownProduct(t *testing.T) {
	svc, _ := seededCartService(t)

	_, err := svc.AddItem(context.Background(), 1, 999, 1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "product_id")
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	svc, _ := seededCartService(t)

	_, err := svc.AddItem(context.Background(), 1, 1, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")
}

func TestCartUpdateItemScopedToOwningCart(t *testing.T) {
	svc, carts := seededCartService(t)
	ctx := context.Background()

	// second cart owned by another user
	_, err := carts.CreateForUser(ctx, 2)
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)

	// the line exists, but under cart 1, not cart 2
	err = svc.UpdateItemQuantity(ctx, 2, item.ID, 5)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	err = svc.UpdateItemQuantity(ctx, 1, item.ID, 5)
	require.NoError(t, err)
	items, err := svc.ItemsForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartRemoveItemScopedToOwningCart(t *testing.T) {
	svc, carts := seededCartService(t)
	ctx := context.Background()

	_, err := carts.CreateForUser(ctx, 2)
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveItem(ctx, 2, item.ID), repo.ErrNotFound)
	require.NoError(t, svc.RemoveItem(ctx, 1, item.ID))

	items, err := svc.ItemsForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartMutationsRejectUnknownCart(t *testing.T) {
	svc, _ := seededCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 99, 1, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateItemQuantity(ctx, 99, 1, 2), repo.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, 99, 1), repo.ErrNotFound)
}

func TestWishlistMirrorsCartLineSemantics(t *testing.T) {
	wishlists := newFakeWishlistRepo()
	products := newFakeProductRepo()
	ctx := context.Background()
	require.NoError(t, products.Create(ctx, productFixture("keyboard", "74.50")))
	_, err := wishlists.CreateForUser(ctx, 1)
	require.NoError(t, err)
	svc := NewWishlistService(wishlists, products)

	first, err := svc.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := svc.ItemsForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.ErrorIs(t, svc.UpdateItemQuantity(ctx, 2, first.ID, 4), repo.ErrNotFound)
}
