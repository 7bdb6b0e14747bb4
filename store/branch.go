package store

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fernandodev-git/bakery-api/models"
)

// BranchStore owns branches.json, read-only seed data describing the
// physical shops. A missing or broken file degrades to an empty list;
// "no branches" is a normal state downstream code must tolerate.
type BranchStore struct {
	mu   sync.Mutex
	path string
}

func NewBranchStore(dataDir string) *BranchStore {
	return &BranchStore{path: filepath.Join(dataDir, "branches.json")}
}

func (s *BranchStore) load() []models.Branch {
	var branches []models.Branch
	if err := readJSON(s.path, &branches); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("branches: %s unreadable, serving empty list: %v", s.path, err)
		}
		return nil
	}
	return branches
}

func (s *BranchStore) All() []models.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *BranchStore) Get(id int) (models.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.load() {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Branch{}, ErrNotFound
}
