package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func seedCheckout(t *testing.T, stock int) (*store.Stores, models.Product) {
	t.Helper()
	s := store.New(t.TempDir())
	_, err := s.Catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	product, err := s.Catalog.CreateProduct(store.ProductInput{
		Title:      "Red Velvet",
		Price:      10,
		Stock:      stock,
		CategoryID: 1,
		BranchID:   2,
	})
	require.NoError(t, err)
	return s, product
}

func TestCheckoutInsufficientStock(t *testing.T) {
	s, product := seedCheckout(t, 3)

	cart := s.Carts.Cart(7)
	cart.AddItem(product.ID, 5)
	require.NoError(t, s.Carts.Save(cart))

	_, err := placeOrder(s, 7, CheckoutRequest{CustomerInfo: models.CustomerInfo{Name: "Ana"}})
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	// Nothing must have changed: no order, stock intact, cart kept.
	got, err := s.Catalog.Product(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
	assert.Empty(t, s.Orders.All())
	assert.Len(t, s.Carts.Cart(7).Items, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s, _ := seedCheckout(t, 3)
	_, err := placeOrder(s, 7, CheckoutRequest{CustomerInfo: models.CustomerInfo{Name: "Ana"}})
	assert.True(t, store.IsValidation(err))
}

func TestCheckoutPlacesOrder(t *testing.T) {
	s, product := seedCheckout(t, 5)

	cart := s.Carts.Cart(7)
	cart.AddItem(product.ID, 2)
	require.NoError(t, s.Carts.Save(cart))

	order, err := placeOrder(s, 7, CheckoutRequest{
		CustomerInfo: models.CustomerInfo{Name: "Ana", Phone: "555-0100"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1001, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "pickup", order.OrderType, "order type defaults to pickup")
	assert.Equal(t, 2, order.BranchID)
	assert.Equal(t, 20.0, order.TotalAmount)
	assert.Equal(t, "Ana", order.CustomerInfo.Name)

	got, err := s.Catalog.Product(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock, "checkout decrements stock")

	assert.True(t, s.Carts.Cart(7).IsEmpty(), "checkout clears the cart")
}
