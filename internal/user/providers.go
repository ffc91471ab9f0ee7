package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
	"github.com/stylemind/stylemind-backend/internal/user/repository"
)

// ProvideUserRepository provides the user repository wrapped with tracing
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// ProvideSwipeRepository provides the swipe event repository
func ProvideSwipeRepository(db *gorm.DB) domain.SwipeRepository {
	return repository.NewGormSwipeRepository(db)
}

// RepositorySet wires the user storage layer
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideSwipeRepository,
)
