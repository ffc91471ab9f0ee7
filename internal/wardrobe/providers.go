package wardrobe

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"github.com/stylemind/stylemind-backend/internal/wardrobe/repository"
)

// ProvideItemRepository provides the wardrobe repository wrapped with tracing
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepositoryWithTracing(db)
}

// RepositorySet wires the wardrobe storage layer
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)
