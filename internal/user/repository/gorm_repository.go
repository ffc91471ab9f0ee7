package repository

import (
	"errors"
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by id
func (r *GormUserRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user.StyleDNA = user.StyleDNA.Normalized()
	return &user, nil
}

// Update saves the user's current state. Concurrent updates to the same
// row are last-write-wins, matching the source system's storage model.
func (r *GormUserRepository) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations for the user tables
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{}, &domain.SwipeEvent{})
}

// GormSwipeRepository implements SwipeRepository using GORM
type GormSwipeRepository struct {
	db *gorm.DB
}

// NewGormSwipeRepository creates a new GORM swipe repository
func NewGormSwipeRepository(db *gorm.DB) *GormSwipeRepository {
	return &GormSwipeRepository{db: db}
}

// Create appends a swipe event
func (r *GormSwipeRepository) Create(swipe *domain.SwipeEvent) error {
	if err := r.db.Create(swipe).Error; err != nil {
		return fmt.Errorf("failed to create swipe: %w", err)
	}
	return nil
}

// FindByUser retrieves all swipe events for a user in insertion order
func (r *GormSwipeRepository) FindByUser(userID string) ([]domain.SwipeEvent, error) {
	var swipes []domain.SwipeEvent
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&swipes).Error; err != nil {
		return nil, fmt.Errorf("failed to find swipes: %w", err)
	}
	return swipes, nil
}
