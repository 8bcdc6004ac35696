package repositories_test

import (
	"fmt"
	"testing"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/server"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := server.OpenDatabase("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestGORMProductRepository(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openDB(t))

	a := &models.Product{Name: "A", Price: decimal.RequireFromString("1.50"), Stock: 1, StoreID: "s1"}
	b := &models.Product{Name: "B", Price: decimal.NewFromInt(2), Stock: 2, StoreID: "s1"}
	other := &models.Product{Name: "C", Price: decimal.NewFromInt(3), Stock: 3, StoreID: "s2"}
	for _, p := range []*models.Product{a, b, other} {
		require.NoError(t, repo.Create(p))
		require.False(t, p.ID.IsZero())
	}

	products, err := repo.GetAllByStore("s1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, a.ID, products[0].ID)
	assert.Equal(t, b.ID, products[1].ID)

	a.Stock = 0
	a.Name = "A2"
	require.NoError(t, repo.Update(a))
	got, err := repo.GetByID("s1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, "1.50", got.Price.StringFixed(2))

	// Scoped to the store
	_, err = repo.GetByID("s2", a.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	wrongStore := *a
	wrongStore.StoreID = "s2"
	assert.ErrorIs(t, repo.Update(&wrongStore), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("s2", a.ID), repositories.ErrNotFound)

	require.NoError(t, repo.Delete("s1", a.ID))
	assert.ErrorIs(t, repo.Delete("s1", a.ID), repositories.ErrNotFound)
}

func TestGORMStoreRepository(t *testing.T) {
	repo := repositories.NewGORMStoreRepository(openDB(t))

	mine := &models.Store{Name: "Mine", OwnerID: "u1"}
	theirs := &models.Store{Name: "Theirs", OwnerID: "u2"}
	require.NoError(t, repo.Create(mine))
	require.NoError(t, repo.Create(theirs))

	stores, err := repo.GetAllByOwner("u1")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Mine", stores[0].Name)

	got, err := repo.GetByID(theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ID("u2"), got.OwnerID)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMEmployeeRepository(t *testing.T) {
	repo := repositories.NewGORMEmployeeRepository(openDB(t))

	e := &models.Employee{Username: "budi", PasswordHash: "hash", Role: models.RoleEmployee, StoreID: "s1"}
	require.NoError(t, repo.Create(e))

	employees, err := repo.GetAllByStore("s1")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "hash", employees[0].PasswordHash)

	dup := &models.Employee{Username: "budi", PasswordHash: "x", StoreID: "s2"}
	assert.Error(t, repo.Create(dup), "usernames are unique")

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openDB(t))

	u := &models.User{Username: "ana", Email: "ana@example.com", Password: "hash"}
	require.NoError(t, repo.Create(u))

	byName, err := repo.GetByUsername("ana")
	require.NoError(t, err)
	byEmail, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	byID, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, u.ID, byID.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
