package models

import "strconv"

type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Cart holds one user's shopping cart. Items are keyed by the
// stringified product id, matching the on-disk carts.json layout.
type Cart struct {
	UserID int                 `json:"user_id"`
	Items  map[string]CartItem `json:"items"`
}

func NewCart(userID int) Cart {
	return Cart{UserID: userID, Items: map[string]CartItem{}}
}

// AddItem accumulates quantity when the product is already in the cart.
func (c *Cart) AddItem(productID, quantity int) {
	if c.Items == nil {
		c.Items = map[string]CartItem{}
	}
	key := strconv.Itoa(productID)
	item, ok := c.Items[key]
	if ok {
		item.Quantity += quantity
	} else {
		item = CartItem{ProductID: productID, Quantity: quantity}
	}
	c.Items[key] = item
}

func (c *Cart) RemoveItem(productID int) {
	delete(c.Items, strconv.Itoa(productID))
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
