// Package product holds the slice of the catalog product that the order and
// review flows write to: rating aggregates and the sold counter.
package product

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

type Product struct {
	id            kernel.UUID
	name          string
	price         decimal.Decimal
	averageRating float64
	ratingCount   int
	sold          int

	isConstructed bool
}

// State carries the persisted fields of a product.
type State struct {
	ID            kernel.UUID
	Name          string
	Price         decimal.Decimal
	AverageRating float64
	RatingCount   int
	Sold          int
}

// NewProduct creates an unrated product that has not been sold yet.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	return RestoreProduct(State{ID: id, Name: name, Price: price})
}

func RestoreProduct(s State) (*Product, error) {
	var nameErr, priceErr, countersErr error
	if strings.TrimSpace(s.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if s.Price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", s.Price))
	}
	if s.RatingCount < 0 || s.Sold < 0 {
		countersErr = errs.NewValueIsInvalidErrorWithCause("counters", fmt.Errorf("ratingCount %d, sold %d", s.RatingCount, s.Sold))
	}
	if err := errors.Join(s.ID.Validate(), nameErr, priceErr, countersErr); err != nil {
		return nil, err
	}
	return &Product{
		id:            s.ID,
		name:          s.Name,
		price:         s.Price,
		averageRating: s.AverageRating,
		ratingCount:   s.RatingCount,
		sold:          s.Sold,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID        { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) AverageRating() float64 { return p.averageRating }
func (p *Product) RatingCount() int       { return p.ratingCount }
func (p *Product) Sold() int              { return p.sold }

// UpdateRating stores a freshly computed rating summary.
func (p *Product) UpdateRating(average float64, count int) error {
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("ratingCount", count, 0, "unbounded")
	}
	if average < 0 || average > 5 {
		return errs.NewValueIsOutOfRangeError("averageRating", average, 0, 5)
	}
	p.averageRating = average
	p.ratingCount = count
	return nil
}

func (p *Product) RecordSale(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	p.sold += quantity
	return nil
}
