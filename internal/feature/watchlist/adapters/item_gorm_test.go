package adapters

import (
	"context"
	"testing"
	"time"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&ItemModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedItem writes a watch-list item for test use.
func seedItem(t *testing.T, repo *itemGorm, ticker, name string, qty, avg float64) entity.Item {
	t.Helper()

	item := entity.Item{
		Ticker:      ticker,
		Name:        name,
		Qty:         qty,
		AvgPriceKRW: avg,
		UpdatedAt:   time.Now(),
	}
	err := repo.Upsert(context.Background(), item)
	require.NoError(t, err, "failed to seed item")

	return item
}

// TestNewItemRepository verifies the constructor wires the DB connection.
func TestNewItemRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewItemRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestItemGorm_Upsert verifies insert and conflict-update behavior.
func TestItemGorm_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("inserts a new item", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewItemRepository(db)

		seedItem(t, repo, "NVDA", "NVIDIA Corporation", 0, 0)

		got, err := repo.Find(context.Background(), "NVDA")
		require.NoError(t, err)
		assert.Equal(t, "NVDA", got.Ticker)
		assert.Equal(t, "NVIDIA Corporation", got.Name)
	})

	t.Run("updates on duplicate ticker", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewItemRepository(db)

		seedItem(t, repo, "AAPL", "Apple Inc.", 0, 0)
		seedItem(t, repo, "AAPL", "Apple Inc.", 10, 250000)

		got, err := repo.Find(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Qty)
		assert.Equal(t, 250000.0, got.AvgPriceKRW)

		items, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1, "duplicate ticker must not create a second row")
	})
}

// TestItemGorm_Find verifies lookup behavior for present and absent tickers.
func TestItemGorm_Find(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewItemRepository(db)

	seedItem(t, repo, "TSLA", "Tesla, Inc.", 3, 310000)

	t.Run("found", func(t *testing.T) {
		got, err := repo.Find(context.Background(), "TSLA")
		require.NoError(t, err)
		assert.Equal(t, "Tesla, Inc.", got.Name)
		assert.Equal(t, 3.0, got.Qty)
		assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Find(context.Background(), "MSFT")
		assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	})
}

// TestItemGorm_Delete verifies removal and the not-found error.
func TestItemGorm_Delete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewItemRepository(db)

	seedItem(t, repo, "NVDA", "NVIDIA Corporation", 0, 0)

	err := repo.Delete(context.Background(), "NVDA")
	require.NoError(t, err)

	_, err = repo.Find(context.Background(), "NVDA")
	assert.ErrorIs(t, err, usecase.ErrItemNotFound)

	err = repo.Delete(context.Background(), "NVDA")
	assert.ErrorIs(t, err, usecase.ErrItemNotFound)
}

// TestItemGorm_List verifies items come back ordered by ticker.
func TestItemGorm_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		seed            []string
		expectedTickers []string
	}{
		{
			name:            "ordered by ticker",
			seed:            []string{"TSLA", "AAPL", "NVDA"},
			expectedTickers: []string{"AAPL", "NVDA", "TSLA"},
		},
		{
			name:            "empty list",
			seed:            nil,
			expectedTickers: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewItemRepository(db)

			for _, ticker := range tt.seed {
				seedItem(t, repo, ticker, ticker+" Inc.", 0, 0)
			}

			items, err := repo.List(context.Background())
			require.NoError(t, err)
			require.Len(t, items, len(tt.expectedTickers))
			for i, expected := range tt.expectedTickers {
				assert.Equal(t, expected, items[i].Ticker)
			}
		})
	}
}
