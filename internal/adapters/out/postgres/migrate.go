package postgres

import (
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, parents first.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusLogDTO{},
		&reviewrepo.ReviewDTO{},
	}
}

// Migrate creates or alters the tables in Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
