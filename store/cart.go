package store

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fernandodev-git/bakery-api/models"
)

// CartStore owns carts.json, an object keyed by stringified user id.
// Cart mutation happens in memory on the models.Cart value; Save
// persists the whole file back with only that user's entry replaced.
type CartStore struct {
	mu      sync.Mutex
	path    string
	catalog *CatalogStore
}

func NewCartStore(dataDir string, catalog *CatalogStore) *CartStore {
	return &CartStore{
		path:    filepath.Join(dataDir, "carts.json"),
		catalog: catalog,
	}
}

func (s *CartStore) load() map[string]models.Cart {
	carts := map[string]models.Cart{}
	if err := readJSON(s.path, &carts); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("carts: %s unreadable, starting empty: %v", s.path, err)
		}
		return map[string]models.Cart{}
	}
	return carts
}

// Cart returns the stored cart for userID, or a fresh empty cart when
// none exists. The empty cart is not persisted until the first Save.
func (s *CartStore) Cart(userID int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.load()[strconv.Itoa(userID)]; ok {
		if cart.Items == nil {
			cart.Items = map[string]models.CartItem{}
		}
		cart.UserID = userID
		return cart
	}
	return models.NewCart(userID)
}

func (s *CartStore) Save(cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts := s.load()
	carts[strconv.Itoa(cart.UserID)] = cart
	return writeJSON(s.path, carts)
}

// Remove deletes a user's cart entry. Removing an absent cart is a no-op.
func (s *CartStore) Remove(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts := s.load()
	if _, ok := carts[strconv.Itoa(userID)]; !ok {
		return nil
	}
	delete(carts, strconv.Itoa(userID))
	return writeJSON(s.path, carts)
}

// All returns every stored cart keyed by user id, for the admin surface.
func (s *CartStore) All() map[string]models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Total prices the cart against the live catalog. Lines whose product
// no longer exists contribute nothing.
func (s *CartStore) Total(cart models.Cart) float64 {
	total := 0.0
	for _, item := range cart.Items {
		product, err := s.catalog.Product(item.ProductID)
		if err != nil {
			continue
		}
		total += product.Price * float64(item.Quantity)
	}
	return total
}
