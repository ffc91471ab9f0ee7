//go:build wireinject
// +build wireinject

package wardrobe

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher http.ItemPublisher) *http.WardrobeHandler {
	wire.Build(
		RepositorySet,
		http.NewWardrobeHandler,
	)
	return nil
}
