package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
	"github.com/hrithikqw/Invoice-Tracker-App/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDB(t *testing.T) *database.DB {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.New(database.Config{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator := database.NewMigrator(db, logger)
	require.NoError(t, migrator.RunMigrations(filepath.Join("..", "..", "..", "..", "migrations")))

	return db
}

func seedUser(t *testing.T, db *database.DB, email string) *entity.User {
	t.Helper()
	users := NewUserRepository(db.DB, zap.NewNop())
	user := &entity.User{Email: email, PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func sampleInvoice() *entity.Invoice {
	months := 12
	return &entity.Invoice{
		VendorName:           "Best Buy",
		ProductName:          "MacBook Pro",
		InvoiceNumber:        "INV-1001",
		ProductCategory:      entity.CategoryElectronics,
		PurchaseDate:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Amount:               1999.99,
		Currency:             entity.CurrencyUSD,
		WarrantyPeriodMonths: &months,
	}
}

func TestInvoiceRepository_Create(t *testing.T) {
	db := setupDB(t)
	repo := NewInvoiceRepository(db.DB, zap.NewNop())
	owner := seedUser(t, db, "a@example.com")

	t.Run("assigns id, owner and timestamps", func(t *testing.T) {
		inv := sampleInvoice()
		err := repo.Create(context.Background(), owner.ID, inv)

		require.NoError(t, err)
		assert.NotEmpty(t, inv.ID)
		assert.Equal(t, owner.ID, inv.Owner)
		assert.False(t, inv.CreatedAt.IsZero())

		stored, err := repo.GetByID(context.Background(), inv.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "MacBook Pro", stored.ProductName)
		require.NotNil(t, stored.WarrantyPeriodMonths)
		assert.Equal(t, 12, *stored.WarrantyPeriodMonths)
		assert.Nil(t, stored.WarrantyEndDate)
	})

	t.Run("owner from payload is ignored", func(t *testing.T) {
		inv := sampleInvoice()
		inv.Owner = "someone-else"

		require.NoError(t, repo.Create(context.Background(), owner.ID, inv))
		assert.Equal(t, owner.ID, inv.Owner)
	})

	t.Run("missing principal is unauthorized", func(t *testing.T) {
		err := repo.Create(context.Background(), "", sampleInvoice())
		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	})
}

func TestInvoiceRepository_List(t *testing.T) {
	db := setupDB(t)
	repo := NewInvoiceRepository(db.DB, zap.NewNop())
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	names := []string{"first", "second", "third"}
	for _, name := range names {
		inv := sampleInvoice()
		inv.ProductName = name
		require.NoError(t, repo.Create(context.Background(), alice.ID, inv))
		time.Sleep(5 * time.Millisecond) // distinct created_at ordering
	}
	other := sampleInvoice()
	other.ProductName = "bobs"
	require.NoError(t, repo.Create(context.Background(), bob.ID, other))

	t.Run("scoped to owner, newest first", func(t *testing.T) {
		invoices, err := repo.List(context.Background(), alice.ID, port.ListOptions{})

		require.NoError(t, err)
		require.Len(t, invoices, 3)
		assert.Equal(t, "third", invoices[0].ProductName)
		assert.Equal(t, "first", invoices[2].ProductName)
	})

	t.Run("respects limit", func(t *testing.T) {
		invoices, err := repo.List(context.Background(), alice.ID, port.ListOptions{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, invoices, 2)
	})

	t.Run("unknown order column falls back to default", func(t *testing.T) {
		invoices, err := repo.List(context.Background(), alice.ID, port.ListOptions{OrderBy: "drop table"})

		require.NoError(t, err)
		require.Len(t, invoices, 3)
		assert.Equal(t, "third", invoices[0].ProductName)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		empty := seedUser(t, db, "carol@example.com")
		invoices, err := repo.List(context.Background(), empty.ID, port.ListOptions{})

		require.NoError(t, err)
		assert.Empty(t, invoices)
	})
}

func TestInvoiceRepository_Update(t *testing.T) {
	db := setupDB(t)
	repo := NewInvoiceRepository(db.DB, zap.NewNop())
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	inv := sampleInvoice()
	require.NoError(t, repo.Create(context.Background(), alice.ID, inv))

	t.Run("updates fields for the owner", func(t *testing.T) {
		end := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		updated := sampleInvoice()
		updated.ProductName = "MacBook Pro 16"
		updated.WarrantyEndDate = &end

		require.NoError(t, repo.Update(context.Background(), inv.ID, alice.ID, updated))

		stored, err := repo.GetByID(context.Background(), inv.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "MacBook Pro 16", stored.ProductName)
		require.NotNil(t, stored.WarrantyEndDate)
		assert.True(t, stored.WarrantyEndDate.Equal(end))
	})

	t.Run("cross-owner update reports not found", func(t *testing.T) {
		err := repo.Update(context.Background(), inv.ID, bob.ID, sampleInvoice())
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		err := repo.Update(context.Background(), "no-such-id", alice.ID, sampleInvoice())
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestInvoiceRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := NewInvoiceRepository(db.DB, zap.NewNop())
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	inv := sampleInvoice()
	require.NoError(t, repo.Create(context.Background(), alice.ID, inv))

	t.Run("cross-owner delete reports not found and keeps the record", func(t *testing.T) {
		err := repo.Delete(context.Background(), inv.ID, bob.ID)
		assert.ErrorIs(t, err, entity.ErrNotFound)

		_, err = repo.GetByID(context.Background(), inv.ID, alice.ID)
		assert.NoError(t, err)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(context.Background(), inv.ID, alice.ID))

		_, err := repo.GetByID(context.Background(), inv.ID, alice.ID)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := repo.Delete(context.Background(), inv.ID, alice.ID)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db.DB, zap.NewNop())

	user := &entity.User{Email: "user@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := repo.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", byID.Email)

	_, err = repo.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	// Duplicate emails are rejected by the unique constraint.
	err = repo.Create(context.Background(), &entity.User{Email: "user@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, entity.ErrRepository)
}
