// Package productrepo maps the product columns the order flows own: price,
// rating aggregates and the sold counter. Catalog fields beyond the name live elsewhere.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AverageRating float64         `gorm:"type:double precision;not null;default:0"`
	RatingCount   int             `gorm:"not null;default:0"`
	Sold          int             `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Price:         p.Price(),
		AverageRating: p.AverageRating(),
		RatingCount:   p.RatingCount(),
		Sold:          p.Sold(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(product.State{
		ID:            id,
		Name:          dto.Name,
		Price:         dto.Price,
		AverageRating: dto.AverageRating,
		RatingCount:   dto.RatingCount,
		Sold:          dto.Sold,
	})
}
