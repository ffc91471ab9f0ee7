package kafka

import "time"

// SwipeRecordedEvent is emitted after every stored swipe
type SwipeRecordedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SwipeID       string    `json:"swipe_id"`
	UserID        string    `json:"user_id"`
	OutfitID      string    `json:"outfit_id"`
	Action        string    `json:"action"`
	StyleCategory string    `json:"style_category"`
	SwipesCount   int       `json:"swipes_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// ItemAddedEvent is emitted after a wardrobe item is stored
type ItemAddedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    string    `json:"item_id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Pattern   string    `json:"pattern"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSwipeRecorded = "swipe.recorded"
	EventTypeItemAdded     = "wardrobe.item_added"
)

// Kafka topics
const (
	TopicSwipeRecorded = "swipe-recorded"
	TopicItemAdded     = "wardrobe-item-added"
)
