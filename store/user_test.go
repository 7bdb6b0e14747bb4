package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandodev-git/bakery-api/models"
	"github.com/fernandodev-git/bakery-api/store"
)

func TestBootstrapDefaultAdmin(t *testing.T) {
	dataDir := t.TempDir()
	users := store.NewUserStore(dataDir)

	all := users.All()
	require.Len(t, all, 1)
	assert.Equal(t, "admin", all[0].Username)
	assert.Equal(t, models.RoleAdmin, all[0].Role)

	// The seed must be persisted, not just in memory.
	_, err := os.Stat(filepath.Join(dataDir, "users.json"))
	assert.NoError(t, err)
}

func TestBootstrapReplacesCorruptFile(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "users.json"), []byte("{broken"), 0o644))

	users := store.NewUserStore(dataDir)
	admin, err := users.ByUsername("admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
}

func TestCreateAndLookupCaseInsensitive(t *testing.T) {
	users := store.NewUserStore(t.TempDir())

	created, err := users.Create("ana", "secret1", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, created.Role)
	assert.Equal(t, 2, created.ID, "seeded admin holds id 1")

	got, err := users.ByUsername("ANA")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, models.RoleClient, got.Role)
}

func TestCreateDuplicateUsername(t *testing.T) {
	users := store.NewUserStore(t.TempDir())

	_, err := users.Create("ana", "secret1", "", "")
	require.NoError(t, err)

	_, err = users.Create("Ana", "other", "", "")
	assert.ErrorIs(t, err, store.ErrConflict, "duplicate check is case-insensitive")
}

func TestCreateValidation(t *testing.T) {
	users := store.NewUserStore(t.TempDir())

	_, err := users.Create("  ", "secret1", "", "")
	assert.True(t, store.IsValidation(err))

	_, err = users.Create("ana", "", "", "")
	assert.True(t, store.IsValidation(err))
}

func TestDeleteUser(t *testing.T) {
	users := store.NewUserStore(t.TempDir())

	created, err := users.Create("ana", "secret1", "", "")
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))
	_, err = users.ByID(created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, users.Delete(created.ID), store.ErrNotFound)
}
