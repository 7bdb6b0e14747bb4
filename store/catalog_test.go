package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func seedCatalog(t *testing.T) (*store.CatalogStore, string) {
	t.Helper()
	dataDir := t.TempDir()
	catalog := store.NewCatalogStore(dataDir)
	_, err := catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	return catalog, dataDir
}

func TestCreateAndGetProduct(t *testing.T) {
	catalog, _ := seedCatalog(t)

	before := len(catalog.Products("", nil))

	created, err := catalog.CreateProduct(store.ProductInput{
		Title:      "Red Velvet",
		Price:      10.0,
		Stock:      5,
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.ProductTypeCake, created.Type)

	got, err := catalog.Product(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Velvet", got.Title)
	assert.Equal(t, 10.0, got.Price)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 1, got.CategoryID)

	assert.Len(t, catalog.Products("", nil), before+1)
}

func TestUpdateProductPartial(t *testing.T) {
	catalog, _ := seedCatalog(t)

	created, err := catalog.CreateProduct(store.ProductInput{
		Title:      "Red Velvet",
		Price:      10.0,
		Stock:      5,
		CategoryID: 1,
	})
	require.NoError(t, err)

	newPrice := 12.5
	updated, err := catalog.UpdateProduct(created.ID, store.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, 5, updated.Stock, "stock must be untouched by partial update")
	assert.Equal(t, "Red Velvet", updated.Title)
}

func TestCreateProductValidation(t *testing.T) {
	catalog, _ := seedCatalog(t)

	_, err := catalog.CreateProduct(store.ProductInput{Title: "Brownie", Price: -1, Stock: 1, CategoryID: 1})
	assert.True(t, store.IsValidation(err), "negative price must be rejected")

	_, err = catalog.CreateProduct(store.ProductInput{Title: "Brownie", Price: 1, Stock: -1, CategoryID: 1})
	assert.True(t, store.IsValidation(err), "negative stock must be rejected")

	_, err = catalog.CreateProduct(store.ProductInput{Title: "Brownie", Price: 1, Stock: 1, CategoryID: 99})
	assert.True(t, store.IsValidation(err), "unknown category must be rejected")

	_, err = catalog.CreateProduct(store.ProductInput{Title: "  ", Price: 1, Stock: 1, CategoryID: 1})
	assert.True(t, store.IsValidation(err), "empty title must be rejected")

	assert.Empty(t, catalog.Products("", nil), "failed creations must not persist anything")
}

func TestProductFilters(t *testing.T) {
	catalog, _ := seedCatalog(t)
	_, err := catalog.CreateCategory("Cookies")
	require.NoError(t, err)

	mk := func(title string, categoryID int) {
		t.Helper()
		_, err := catalog.CreateProduct(store.ProductInput{Title: title, Price: 5, Stock: 1, CategoryID: categoryID})
		require.NoError(t, err)
	}
	mk("Red Velvet", 1)
	mk("Velvet Cookie", 2)
	mk("Lemon Pie", 1)

	assert.Len(t, catalog.Products("velvet", nil), 2, "title match is case-insensitive substring")

	cakes := 1
	assert.Len(t, catalog.Products("", &cakes), 2)

	filtered := catalog.Products("velvet", &cakes)
	require.Len(t, filtered, 1, "filters compose with AND")
	assert.Equal(t, "Red Velvet", filtered[0].Title)
}

func TestDeleteCategoryInUse(t *testing.T) {
	catalog, _ := seedCatalog(t)

	product, err := catalog.CreateProduct(store.ProductInput{Title: "Red Velvet", Price: 10, Stock: 5, CategoryID: 1})
	require.NoError(t, err)

	err = catalog.DeleteCategory(1)
	assert.ErrorIs(t, err, store.ErrConflict)

	// Both records must be unchanged after the refused delete.
	_, err = catalog.Category(1)
	assert.NoError(t, err)
	_, err = catalog.Product(product.ID)
	assert.NoError(t, err)

	// Once unreferenced, the delete goes through and is irreversible.
	require.NoError(t, catalog.DeleteProduct(product.ID))
	require.NoError(t, catalog.DeleteCategory(1))
	_, err = catalog.Category(1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCategoryCRUD(t *testing.T) {
	dataDir := t.TempDir()
	catalog := store.NewCatalogStore(dataDir)

	_, err := catalog.CreateCategory("  ")
	assert.True(t, store.IsValidation(err))

	created, err := catalog.CreateCategory("Cakes")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	updated, err := catalog.UpdateCategory(created.ID, "Tortas")
	require.NoError(t, err)
	assert.Equal(t, "Tortas", updated.Name)

	_, err = catalog.UpdateCategory(99, "Nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDecrementStock(t *testing.T) {
	catalog, _ := seedCatalog(t)

	product, err := catalog.CreateProduct(store.ProductInput{Title: "Red Velvet", Price: 10, Stock: 3, CategoryID: 1})
	require.NoError(t, err)

	_, err = catalog.DecrementStock(product.ID, 5)
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	got, err := catalog.Product(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock, "stock must be unchanged after a refused decrement")

	after, err := catalog.DecrementStock(product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Stock)
}

func TestDanglingCategoryProductKept(t *testing.T) {
	catalog, dataDir := seedCatalog(t)

	product, err := catalog.CreateProduct(store.ProductInput{Title: "Orphan", Price: 1, Stock: 1, CategoryID: 1})
	require.NoError(t, err)

	// Break the reference behind the store's back.
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "categories.json"), []byte("[]"), 0o644))

	got, err := catalog.Product(product.ID)
	require.NoError(t, err, "products with a dangling category_id stay visible")
	assert.Equal(t, "Orphan", got.Title)
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "categories.json"), []byte("{not json"), 0o644))

	catalog := store.NewCatalogStore(dataDir)
	assert.Empty(t, catalog.Categories())

	_, err := catalog.Category(1)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
