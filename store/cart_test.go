package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func TestAddItemAccumulates(t *testing.T) {
	cart := models.NewCart(7)
	cart.AddItem(3, 2)
	cart.AddItem(3, 3)

	require.Len(t, cart.Items, 1, "repeated adds must not create duplicate entries")
	assert.Equal(t, 5, cart.Items["3"].Quantity)
}

func TestCartSaveRoundTrip(t *testing.T) {
	s := store.New(t.TempDir())

	cart := models.NewCart(7)
	cart.AddItem(3, 2)
	cart.AddItem(9, 1)
	require.NoError(t, s.Carts.Save(cart))

	loaded := s.Carts.Cart(7)
	assert.Equal(t, 7, loaded.UserID)
	assert.Equal(t, cart.Items, loaded.Items)
}

func TestEmptyCartNotPersisted(t *testing.T) {
	dataDir := t.TempDir()
	s := store.New(dataDir)

	cart := s.Carts.Cart(42)
	assert.Equal(t, 42, cart.UserID)
	assert.Empty(t, cart.Items)

	_, err := os.Stat(filepath.Join(dataDir, "carts.json"))
	assert.True(t, os.IsNotExist(err), "asking for a cart must not write storage")
}

func TestRemoveCart(t *testing.T) {
	s := store.New(t.TempDir())

	cart := s.Carts.Cart(7)
	cart.AddItem(3, 2)
	require.NoError(t, s.Carts.Save(cart))

	require.NoError(t, s.Carts.Remove(7))
	assert.Empty(t, s.Carts.Cart(7).Items)

	// Removing an absent cart is a no-op.
	assert.NoError(t, s.Carts.Remove(999))
}

func TestCartTotalUsesLivePrices(t *testing.T) {
	s := store.New(t.TempDir())
	_, err := s.Catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	product, err := s.Catalog.CreateProduct(store.ProductInput{Title: "Red Velvet", Price: 10, Stock: 5, CategoryID: 1})
	require.NoError(t, err)

	cart := s.Carts.Cart(7)
	cart.AddItem(product.ID, 2)
	cart.AddItem(404, 1) // vanished product contributes nothing
	require.NoError(t, s.Carts.Save(cart))

	assert.Equal(t, 20.0, s.Carts.Total(cart))

	// A price change is reflected immediately: the cart holds no snapshot.
	newPrice := 12.5
	_, err = s.Catalog.UpdateProduct(product.ID, store.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Carts.Total(cart))
}

func TestAllCarts(t *testing.T) {
	s := store.New(t.TempDir())

	for _, userID := range []int{1, 2} {
		cart := s.Carts.Cart(userID)
		cart.AddItem(5, 1)
		require.NoError(t, s.Carts.Save(cart))
	}

	all := s.Carts.All()
	require.Len(t, all, 2)
	assert.Contains(t, all, "1")
	assert.Contains(t, all, "2")
}
