package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUserNotFound is returned when the referenced user id is absent
var ErrUserNotFound = errors.New("user not found")

// DefaultUserName is assigned when a profile is created without a name
const DefaultUserName = "StyleMind User"

// JSONMap stores an opaque JSON document (body analysis blob) as jsonb
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json source type %T", src)
	}

	return json.Unmarshal(raw, m)
}

// User represents a StyleMind profile (domain model). Users are anonymous
// device profiles: no credentials, identity is an opaque uuid.
type User struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email              *string   `json:"email,omitempty"`
	Name               string    `json:"name" gorm:"not null"`
	Username           string    `json:"username"`
	Gender             string    `json:"gender"`
	ProfileComplete    bool      `json:"profile_complete" gorm:"default:false"`
	OnboardingComplete bool      `json:"onboarding_complete" gorm:"default:false"`
	SwipesCount        int       `json:"swipes_count" gorm:"default:0"`
	BodyAnalysis       JSONMap   `json:"body_analysis,omitempty" gorm:"type:jsonb"`
	StyleDNA           StyleDNA  `json:"style_dna" gorm:"type:jsonb"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserUpdate carries a field-level partial update; nil means "leave as is"
type UserUpdate struct {
	Name               *string  `json:"name,omitempty"`
	Gender             *string  `json:"gender,omitempty"`
	OnboardingComplete *bool    `json:"onboarding_complete,omitempty"`
	ProfileComplete    *bool    `json:"profile_complete,omitempty"`
	BodyAnalysis       JSONMap  `json:"body_analysis,omitempty"`
	StyleDNA           StyleDNA `json:"style_dna,omitempty"`
}

// Apply merges the provided fields into the user. Identity, swipe counter
// and creation timestamp are never touched by a partial update.
func (u *UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Gender != nil {
		user.Gender = *u.Gender
	}
	if u.OnboardingComplete != nil {
		user.OnboardingComplete = *u.OnboardingComplete
	}
	if u.ProfileComplete != nil {
		user.ProfileComplete = *u.ProfileComplete
	}
	if u.BodyAnalysis != nil {
		user.BodyAnalysis = u.BodyAnalysis
	}
	if u.StyleDNA != nil {
		user.StyleDNA = u.StyleDNA.Normalized()
	}
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id string) (*User, error)
	Update(user *User) error
	Count() (int64, error)
}
