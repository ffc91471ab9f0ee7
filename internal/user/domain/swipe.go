package domain

import "time"

// SwipeEvent records one catalog swipe. Events are append-only: created
// once, never mutated or deleted.
type SwipeEvent struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	OutfitID      string    `json:"outfit_id" gorm:"not null"`
	Action        string    `json:"action" gorm:"not null"`
	StyleCategory string    `json:"style_category" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name
func (SwipeEvent) TableName() string {
	return "swipes"
}

// SwipeRepository defines the contract for swipe event access.
// There is deliberately no update or delete.
type SwipeRepository interface {
	Create(swipe *SwipeEvent) error
	FindByUser(userID string) ([]SwipeEvent, error)
}
