package services

import (
	"math"
	"time"

	"storefront/internal/core/domain/model/order"
)

// DefaultStaleAfterDays is how many whole days an order may stay in Shipping
// before the system marks it Delivered.
const DefaultStaleAfterDays = 15

// ShipmentAging is the stale-shipment policy. An order is stale when it is in
// Shipping and floor(days since it shipped) is strictly greater than the
// threshold, so with 15 days the sweep first fires on day 16.
type ShipmentAging struct {
	staleAfterDays int
}

// NewShipmentAging builds the policy; non-positive thresholds fall back to
// DefaultStaleAfterDays.
func NewShipmentAging(staleAfterDays int) ShipmentAging {
	if staleAfterDays <= 0 {
		staleAfterDays = DefaultStaleAfterDays
	}
	return ShipmentAging{staleAfterDays: staleAfterDays}
}

// StaleAfterDays is the threshold in whole days.
func (a ShipmentAging) StaleAfterDays() int {
	return a.staleAfterDays
}

// DaysSinceShipping returns whole days elapsed between the order's shipped-at
// time and now. Shipped-at times in the future count as zero days.
func (a ShipmentAging) DaysSinceShipping(o *order.Order, now time.Time) int {
	elapsed := now.Sub(o.ShippedAt())
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed.Hours() / 24))
}

// IsStale reports whether the sweep should mark o Delivered at now. Orders in
// any status other than Shipping are never stale.
func (a ShipmentAging) IsStale(o *order.Order, now time.Time) bool {
	return o.Status() == order.Shipping && a.DaysSinceShipping(o, now) > a.staleAfterDays
}
