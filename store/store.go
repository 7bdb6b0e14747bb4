// Package store implements the flat-file persistence layer: one JSON
// file per entity collection, accessed read-whole / mutate / write-whole.
// Each store owns its file exclusively and serializes access with a
// mutex; writes go through an atomic temp-file-and-rename. There are no
// cross-file transactions: decrementing stock and recording an order
// are two independently-failable writes.
package store

// Stores bundles the five JSON-backed stores. They are constructed once
// at process start and handed to handlers explicitly; the files on disk
// remain the source of truth, so external edits are picked up on the
// next call.
type Stores struct {
	Catalog  *CatalogStore
	Carts    *CartStore
	Orders   *OrderStore
	Users    *UserStore
	Branches *BranchStore
}

func New(dataDir string) *Stores {
	catalog := NewCatalogStore(dataDir)
	return &Stores{
		Catalog:  catalog,
		Carts:    NewCartStore(dataDir, catalog),
		Orders:   NewOrderStore(dataDir, catalog),
		Users:    NewUserStore(dataDir),
		Branches: NewBranchStore(dataDir),
	}
}
