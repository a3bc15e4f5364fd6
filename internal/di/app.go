package di

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/config"
)

// Application bundles everything main needs to serve traffic.
type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
}
