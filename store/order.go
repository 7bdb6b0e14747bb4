package store

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fernandodev-git/bakery-api/models"
)

// firstOrderID is where the persisted counter starts. Order ids only
// ever increment and are never reused, even across deletions.
const firstOrderID = 1001

type ordersFile struct {
	Orders      []models.Order `json:"orders"`
	NextOrderID int            `json:"next_order_id"`
}

// OrderStore owns orders.json in its counter form:
// {"orders": [...], "next_order_id": N}.
type OrderStore struct {
	mu      sync.Mutex
	path    string
	catalog *CatalogStore
}

func NewOrderStore(dataDir string, catalog *CatalogStore) *OrderStore {
	return &OrderStore{
		path:    filepath.Join(dataDir, "orders.json"),
		catalog: catalog,
	}
}

func (s *OrderStore) load() ordersFile {
	var f ordersFile
	if err := readJSON(s.path, &f); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("orders: %s unreadable, starting empty: %v", s.path, err)
		}
		return ordersFile{NextOrderID: firstOrderID}
	}
	if f.NextOrderID < firstOrderID {
		f.NextOrderID = firstOrderID
	}
	return f
}

func orderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Create converts a cart into a permanent order. Each line snapshots
// the product's title and price at purchase time; lines whose product
// no longer resolves are skipped, so items and total_amount reflect
// only resolvable lines. The branch is taken from the first resolvable
// product.
func (s *OrderStore) Create(userID int, cart models.Cart, info models.CustomerInfo, orderType string) (models.Order, error) {
	if cart.IsEmpty() {
		return models.Order{}, &ValidationError{Field: "items", Reason: "cart is empty"}
	}

	// Deterministic line order regardless of map iteration.
	keys := make([]string, 0, len(cart.Items))
	for k := range cart.Items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})

	var (
		items    []models.OrderItem
		total    float64
		branchID int
	)
	for _, k := range keys {
		line := cart.Items[k]
		product, err := s.catalog.Product(line.ProductID)
		if err != nil {
			log.Printf("orders: skipping cart line, product %d no longer exists", line.ProductID)
			continue
		}
		if branchID == 0 {
			branchID = product.BranchID
		}
		lineTotal := product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			ProductTitle: product.Title,
			Quantity:     line.Quantity,
			UnitPrice:    product.Price,
			TotalPrice:   lineTotal,
		})
		total += lineTotal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.load()
	now := time.Now().UTC()
	order := models.Order{
		ID:           f.NextOrderID,
		Ref:          orderRef(),
		UserID:       userID,
		CustomerInfo: info,
		Items:        items,
		TotalAmount:  total,
		Status:       models.OrderStatusPending,
		BranchID:     branchID,
		OrderType:    orderType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.Orders = append(f.Orders, order)
	f.NextOrderID++
	if err := writeJSON(s.path, f); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// All returns every order, newest first.
func (s *OrderStore) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load().Orders
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func (s *OrderStore) ByUser(userID int) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	for _, o := range s.load().Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func (s *OrderStore) Get(id int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.load().Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdateStatus is the only mutation an order supports after creation.
func (s *OrderStore) UpdateStatus(id int, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, &ValidationError{Field: "status", Reason: "invalid order status"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.load()
	for i := range f.Orders {
		if f.Orders[i].ID == id {
			f.Orders[i].Status = status
			f.Orders[i].UpdatedAt = time.Now().UTC()
			if err := writeJSON(s.path, f); err != nil {
				return models.Order{}, err
			}
			return f.Orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}
