package repository

import (
	"sync"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// MemoryUserRepository is an in-memory UserRepository used in tests and
// for dependency-free local runs. The mutex serializes concurrent swipes
// for the same user, a documented strengthening over the source system's
// last-write-wins map.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

// Create inserts a new user
func (r *MemoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

// FindByID retrieves a user by id
func (r *MemoryUserRepository) FindByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.StyleDNA = user.StyleDNA.Normalized()
	return &user, nil
}

// Update saves the user's current state
func (r *MemoryUserRepository) Update(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

// Count returns the total number of users
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

// MemorySwipeRepository is an in-memory, append-only SwipeRepository
type MemorySwipeRepository struct {
	mu     sync.RWMutex
	swipes []domain.SwipeEvent
}

// NewMemorySwipeRepository creates an empty in-memory swipe repository
func NewMemorySwipeRepository() *MemorySwipeRepository {
	return &MemorySwipeRepository{}
}

// Create appends a swipe event
func (r *MemorySwipeRepository) Create(swipe *domain.SwipeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swipes = append(r.swipes, *swipe)
	return nil
}

// FindByUser retrieves all swipe events for a user in insertion order
func (r *MemorySwipeRepository) FindByUser(userID string) ([]domain.SwipeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.SwipeEvent
	for _, s := range r.swipes {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
