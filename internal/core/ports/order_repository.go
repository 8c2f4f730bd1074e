// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories, the unit of work and the notifier.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and status log.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and initial log entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, deliveredAt, updatedAt and any log entries
	// appended since the order was loaded. Persisted log entries are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInShippingStatus retrieves every order currently in Shipping.
	// Used by the stale-shipment sweep.
	GetAllInShippingStatus(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order with its items and log.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
