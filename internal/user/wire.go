//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/stylemind/stylemind-backend/internal/user/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher http.SwipePublisher) *http.UserHandler {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil
}
