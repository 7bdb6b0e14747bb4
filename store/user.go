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

// defaultAdmin is seeded when users.json is missing or unreadable, so a
// fresh deployment always has a working admin login. This is a known
// credential; change it before exposing the service.
var defaultAdmin = models.User{
	ID:       1,
	Username: "admin",
	Password: "adminpassword123",
	Role:     models.RoleAdmin,
}

// UserStore owns users.json, an array of user records. Usernames are
// unique case-insensitively.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json")}
}

func (s *UserStore) load() []models.User {
	var users []models.User
	err := readJSON(s.path, &users)
	if err == nil {
		return users
	}
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("users: %s missing, seeding default admin account", s.path)
	} else {
		log.Printf("users: %s unreadable, reseeding default admin account: %v", s.path, err)
	}
	users = []models.User{defaultAdmin}
	if werr := writeJSON(s.path, users); werr != nil {
		log.Printf("users: failed to persist seeded admin: %v", werr)
	}
	return users
}

// ByUsername looks a user up by case-insensitive exact match.
func (s *UserStore) ByUsername(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.load() {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) ByID(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.load() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) All() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create registers a new client-role account. The username must not be
// taken, compared case-insensitively.
func (s *UserStore) Create(username, password, email, address string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return models.User{}, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	maxID := 0
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, fmt.Errorf("username %q already taken: %w", username, ErrConflict)
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := models.User{
		ID:       maxID + 1,
		Username: username,
		Password: password,
		Role:     models.RoleClient,
		Email:    email,
		Address:  address,
	}
	users = append(users, user)
	if err := writeJSON(s.path, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrNotFound
	}
	return writeJSON(s.path, kept)
}
