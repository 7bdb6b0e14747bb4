package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fernandodev-git/bakery-api/models"
)

// CatalogStore owns categories.json and products.json. Every call
// reloads from disk and every mutation rewrites the whole file, so the
// files on disk are the single source of truth. The mutex serializes
// read-modify-write cycles within this process.
type CatalogStore struct {
	mu             sync.Mutex
	categoriesPath string
	productsPath   string
}

func NewCatalogStore(dataDir string) *CatalogStore {
	return &CatalogStore{
		categoriesPath: filepath.Join(dataDir, "categories.json"),
		productsPath:   filepath.Join(dataDir, "products.json"),
	}
}

func (s *CatalogStore) loadCategories() []models.Category {
	var categories []models.Category
	if err := readJSON(s.categoriesPath, &categories); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("catalog: %s unreadable, starting empty: %v", s.categoriesPath, err)
		}
		return nil
	}
	return categories
}

func (s *CatalogStore) loadProducts(categories []models.Category) []models.Product {
	var products []models.Product
	if err := readJSON(s.productsPath, &products); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("catalog: %s unreadable, starting empty: %v", s.productsPath, err)
		}
		return nil
	}
	// Products pointing at a deleted category are kept so the data can
	// be repaired by hand; the old behavior of silently dropping them
	// masked broken files.
	for _, p := range products {
		if findCategory(categories, p.CategoryID) == nil {
			log.Printf("catalog: product %d (%q) references unknown category %d", p.ID, p.Title, p.CategoryID)
		}
	}
	return products
}

func findCategory(categories []models.Category, id int) *models.Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

func findProduct(products []models.Product, id int) *models.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// ---------- Categories ----------

func (s *CatalogStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCategories()
}

func (s *CatalogStore) Category(id int) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := findCategory(s.loadCategories(), id); c != nil {
		return *c, nil
	}
	return models.Category{}, ErrNotFound
}

func (s *CatalogStore) CreateCategory(name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	maxID := 0
	for _, c := range categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	category := models.Category{ID: maxID + 1, Name: name}
	categories = append(categories, category)
	if err := writeJSON(s.categoriesPath, categories); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CatalogStore) UpdateCategory(id int, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	category := findCategory(categories, id)
	if category == nil {
		return models.Category{}, ErrNotFound
	}
	category.Name = name
	if err := writeJSON(s.categoriesPath, categories); err != nil {
		return models.Category{}, err
	}
	return *category, nil
}

// DeleteCategory refuses to remove a category any product still uses.
func (s *CatalogStore) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	if findCategory(categories, id) == nil {
		return ErrNotFound
	}
	for _, p := range s.loadProducts(categories) {
		if p.CategoryID == id {
			return fmt.Errorf("category %d still in use: %w", id, ErrConflict)
		}
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return writeJSON(s.categoriesPath, kept)
}

// ---------- Products ----------

// Products lists the catalog, optionally filtered by a case-insensitive
// title substring and/or an exact category id. Filters compose with AND.
func (s *CatalogStore) Products(titleFilter string, categoryID *int) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.loadProducts(s.loadCategories())
	if titleFilter == "" && categoryID == nil {
		return products
	}

	needle := strings.ToLower(titleFilter)
	var filtered []models.Product
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *CatalogStore) Product(id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := findProduct(s.loadProducts(s.loadCategories()), id); p != nil {
		return *p, nil
	}
	return models.Product{}, ErrNotFound
}

// ProductInput carries the fields for a new product. Type defaults to
// "cake" when empty.
type ProductInput struct {
	Type        string
	Title       string
	Description string
	Price       float64
	Stock       int
	CategoryID  int
	BranchID    int
	ImageURL    string
	Weight      float64
}

func validatePrice(price float64) error {
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "must be a non-negative number"}
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must be a non-negative integer"}
	}
	return nil
}

func (s *CatalogStore) CreateProduct(in ProductInput) (models.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Product{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if err := validatePrice(in.Price); err != nil {
		return models.Product{}, err
	}
	if err := validateStock(in.Stock); err != nil {
		return models.Product{}, err
	}
	if in.Type == "" {
		in.Type = models.ProductTypeCake
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	if findCategory(categories, in.CategoryID) == nil {
		return models.Product{}, &ValidationError{Field: "category_id", Reason: "unknown category"}
	}

	products := s.loadProducts(categories)
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product := models.Product{
		ID:          maxID + 1,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		BranchID:    in.BranchID,
		ImageURL:    in.ImageURL,
		Weight:      in.Weight,
	}
	products = append(products, product)
	if err := writeJSON(s.productsPath, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ProductUpdate applies partial-update semantics: only non-nil fields
// are written onto the stored product.
type ProductUpdate struct {
	Type        *string
	Title       *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *int
	BranchID    *int
	ImageURL    *string
	Weight      *float64
}

func (s *CatalogStore) UpdateProduct(id int, in ProductUpdate) (models.Product, error) {
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return models.Product{}, err
		}
	}
	if in.Stock != nil {
		if err := validateStock(*in.Stock); err != nil {
			return models.Product{}, err
		}
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return models.Product{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.loadCategories()
	if in.CategoryID != nil && findCategory(categories, *in.CategoryID) == nil {
		return models.Product{}, &ValidationError{Field: "category_id", Reason: "unknown category"}
	}

	products := s.loadProducts(categories)
	product := findProduct(products, id)
	if product == nil {
		return models.Product{}, ErrNotFound
	}

	if in.Type != nil {
		product.Type = *in.Type
	}
	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.BranchID != nil {
		product.BranchID = *in.BranchID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}

	if err := writeJSON(s.productsPath, products); err != nil {
		return models.Product{}, err
	}
	return *product, nil
}

func (s *CatalogStore) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.loadProducts(s.loadCategories())
	if findProduct(products, id) == nil {
		return ErrNotFound
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeJSON(s.productsPath, kept)
}

// DecrementStock atomically checks and reduces a product's stock.
// It fails with ErrInsufficientStock when the product cannot cover the
// requested quantity, leaving the file untouched.
func (s *CatalogStore) DecrementStock(id, quantity int) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.loadProducts(s.loadCategories())
	product := findProduct(products, id)
	if product == nil {
		return models.Product{}, ErrNotFound
	}
	if product.Stock < quantity {
		return models.Product{}, fmt.Errorf("product %q has %d in stock, %d requested: %w",
			product.Title, product.Stock, quantity, ErrInsufficientStock)
	}
	product.Stock -= quantity
	if err := writeJSON(s.productsPath, products); err != nil {
		return models.Product{}, err
	}
	return *product, nil
}
