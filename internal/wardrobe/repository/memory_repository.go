package repository

import (
	"sync"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// MemoryItemRepository is an in-memory ItemRepository. Items are kept in
// per-user slices to preserve insertion order (the selector's tie-break),
// with a direct id index replacing the source system's all-users linear
// scan while keeping the same NotFound contract.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	byUser map[string][]string
	byID   map[string]domain.Item
}

// NewMemoryItemRepository creates an empty in-memory wardrobe repository
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		byUser: make(map[string][]string),
		byID:   make(map[string]domain.Item),
	}
}

// Create inserts a new wardrobe item
func (r *MemoryItemRepository) Create(item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = *item
	r.byUser[item.UserID] = append(r.byUser[item.UserID], item.ID)
	return nil
}

// FindByUser retrieves a user's items in insertion order
func (r *MemoryItemRepository) FindByUser(userID string, category string) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, ok := r.byID[id]
		if !ok {
			continue
		}
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// FindByID retrieves an item by id
func (r *MemoryItemRepository) FindByID(id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// Update saves the item's current state
func (r *MemoryItemRepository) Update(item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.byID[item.ID] = *item
	return nil
}

// Delete removes an item
func (r *MemoryItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	delete(r.byID, id)

	ids := r.byUser[item.UserID]
	for i, candidate := range ids {
		if candidate == id {
			r.byUser[item.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
