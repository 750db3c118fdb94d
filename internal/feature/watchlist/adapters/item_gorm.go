// Package adapters provides the repository implementations for the watchlist feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemModel is the gorm persistence model for a watch-list item.
type ItemModel struct {
	ID          uint      `gorm:"primaryKey"`
	Ticker      string    `gorm:"size:32;uniqueIndex;not null"`
	Name        string    `gorm:"size:255;not null"`
	Qty         float64   `gorm:"not null;default:0"`
	AvgPriceKRW float64   `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName overrides gorm's default table naming.
func (ItemModel) TableName() string { return "watchlist_items" }

func (m ItemModel) toEntity() entity.Item {
	return entity.Item{
		Ticker:      m.Ticker,
		Name:        m.Name,
		Qty:         m.Qty,
		AvgPriceKRW: m.AvgPriceKRW,
		UpdatedAt:   m.UpdatedAt,
	}
}

// itemGorm is the gorm implementation of the ItemRepository interface.
type itemGorm struct {
	db *gorm.DB
}

var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemRepository creates a new itemGorm repository with the given DB connection.
func NewItemRepository(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

// Upsert inserts the item, or updates its mutable columns when the ticker
// already exists.
func (r *itemGorm) Upsert(ctx context.Context, item entity.Item) error {
	model := ItemModel{
		Ticker:      item.Ticker,
		Name:        item.Name,
		Qty:         item.Qty,
		AvgPriceKRW: item.AvgPriceKRW,
		UpdatedAt:   item.UpdatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticker"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "qty", "avg_price_krw", "updated_at"}),
		}).
		Create(&model).Error
}

// Find returns the item for the given ticker.
func (r *itemGorm) Find(ctx context.Context, ticker string) (entity.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Item{}, usecase.ErrItemNotFound
		}
		return entity.Item{}, err
	}
	return model.toEntity(), nil
}

// Delete removes the item for the given ticker.
func (r *itemGorm) Delete(ctx context.Context, ticker string) error {
	res := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Delete(&ItemModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// List returns all items ordered by ticker.
func (r *itemGorm) List(ctx context.Context) ([]entity.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Order("ticker ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]entity.Item, 0, len(models))
	for _, m := range models {
		items = append(items, m.toEntity())
	}
	return items, nil
}
