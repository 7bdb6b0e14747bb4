package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func seedOrderFixtures(t *testing.T) (*store.Stores, models.Product) {
	t.Helper()
	s := store.New(t.TempDir())
	_, err := s.Catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	product, err := s.Catalog.CreateProduct(store.ProductInput{
		Title:      "Red Velvet",
		Price:      10,
		Stock:      50,
		CategoryID: 1,
		BranchID:   3,
	})
	require.NoError(t, err)
	return s, product
}

func cartWith(productID, quantity int) models.Cart {
	cart := models.NewCart(7)
	cart.AddItem(productID, quantity)
	return cart
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	s, product := seedOrderFixtures(t)

	order, err := s.Orders.Create(7, cartWith(product.ID, 2), models.CustomerInfo{Name: "Ana"}, "pickup")
	require.NoError(t, err)

	assert.Equal(t, 1001, order.ID, "counter starts at 1001")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 3, order.BranchID, "branch comes from the first resolvable product")
	assert.NotEmpty(t, order.Ref)
	assert.Equal(t, 20.0, order.TotalAmount)

	require.Len(t, order.Items, 1)
	line := order.Items[0]
	assert.Equal(t, "Red Velvet", line.ProductTitle)
	assert.Equal(t, 10.0, line.UnitPrice)
	assert.Equal(t, 20.0, line.TotalPrice)

	// Later price changes must not touch the recorded order.
	newPrice := 99.0
	_, err = s.Catalog.UpdateProduct(product.ID, store.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	stored, err := s.Orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Items[0].UnitPrice)
}

func TestCreateOrderSkipsVanishedProducts(t *testing.T) {
	s, product := seedOrderFixtures(t)

	cart := cartWith(product.ID, 1)
	cart.AddItem(404, 3)

	order, err := s.Orders.Create(7, cart, models.CustomerInfo{Name: "Ana"}, "pickup")
	require.NoError(t, err)
	require.Len(t, order.Items, 1, "unresolvable lines are skipped")
	assert.Equal(t, 10.0, order.TotalAmount, "total reflects only resolvable lines")
}

func TestCreateOrderEmptyCart(t *testing.T) {
	s, _ := seedOrderFixtures(t)
	_, err := s.Orders.Create(7, models.NewCart(7), models.CustomerInfo{}, "pickup")
	assert.True(t, store.IsValidation(err))
}

func TestOrderIDsDistinctUnderConcurrency(t *testing.T) {
	s, product := seedOrderFixtures(t)

	const n = 10
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := s.Orders.Create(7, cartWith(product.ID, 1), models.CustomerInfo{}, "pickup")
			if assert.NoError(t, err) {
				ids <- order.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "order id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestOrderCounterSurvivesReload(t *testing.T) {
	dataDir := t.TempDir()
	s := store.New(dataDir)
	_, err := s.Catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	product, err := s.Catalog.CreateProduct(store.ProductInput{Title: "Red Velvet", Price: 10, Stock: 50, CategoryID: 1})
	require.NoError(t, err)

	first, err := s.Orders.Create(7, cartWith(product.ID, 1), models.CustomerInfo{}, "pickup")
	require.NoError(t, err)

	reopened := store.New(dataDir)
	second, err := reopened.Orders.Create(7, cartWith(product.ID, 1), models.CustomerInfo{}, "pickup")
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestUpdateStatus(t *testing.T) {
	s, product := seedOrderFixtures(t)

	order, err := s.Orders.Create(7, cartWith(product.ID, 1), models.CustomerInfo{}, "pickup")
	require.NoError(t, err)

	updated, err := s.Orders.UpdateStatus(order.ID, models.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))

	stored, err := s.Orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, stored.Status)

	_, err = s.Orders.UpdateStatus(order.ID, models.OrderStatus("shipped-to-mars"))
	assert.True(t, store.IsValidation(err))

	_, err = s.Orders.UpdateStatus(9999, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrdersByUser(t *testing.T) {
	s, product := seedOrderFixtures(t)

	_, err := s.Orders.Create(7, cartWith(product.ID, 1), models.CustomerInfo{}, "pickup")
	require.NoError(t, err)
	otherCart := models.NewCart(8)
	otherCart.AddItem(product.ID, 1)
	_, err = s.Orders.Create(8, otherCart, models.CustomerInfo{}, "pickup")
	require.NoError(t, err)

	assert.Len(t, s.Orders.ByUser(7), 1)
	assert.Len(t, s.Orders.ByUser(8), 1)
	assert.Empty(t, s.Orders.ByUser(9))
	assert.Len(t, s.Orders.All(), 2)
}
