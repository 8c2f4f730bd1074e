package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository exposes the product fields this service owns: rating
// aggregates and the sold counter. Catalog management lives elsewhere.
type ProductRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	Update(ctx context.Context, aggregate *product.Product) error
}
