package repository

import (
	"errors"
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM wardrobe repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Create inserts a new wardrobe item
func (r *GormItemRepository) Create(item *domain.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wardrobe item: %w", err)
	}
	return nil
}

// FindByUser retrieves a user's items in insertion order, optionally
// restricted to one category. Unknown users yield an empty slice.
func (r *GormItemRepository) FindByUser(userID string, category string) ([]domain.Item, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at ASC")
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var items []domain.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find wardrobe items: %w", err)
	}
	return items, nil
}

// FindByID retrieves an item by id
func (r *GormItemRepository) FindByID(id string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find wardrobe item: %w", err)
	}
	return &item, nil
}

// Update saves the item's current state
func (r *GormItemRepository) Update(item *domain.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update wardrobe item: %w", err)
	}
	return nil
}

// Delete removes an item
func (r *GormItemRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&domain.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete wardrobe item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}
