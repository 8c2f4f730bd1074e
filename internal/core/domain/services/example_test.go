package services_test

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

func ExampleShipmentAging() {
	shippedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item, _ := order.NewLineItem(kernel.NewUUID(), 1, decimal.NewFromInt(45))
	o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", order.NewOrderCode(),
		[]order.LineItem{item}, order.PaymentOnline, shippedAt.Add(-time.Hour))
	_ = o.ChangeStatus(order.Shipping, order.SystemActor(), shippedAt)

	aging := services.NewShipmentAging(services.DefaultStaleAfterDays)
	for _, days := range []int{15, 16} {
		now := shippedAt.AddDate(0, 0, days)
		fmt.Printf("day %d: %d days shipped, stale=%t\n", days, aging.DaysSinceShipping(o, now), aging.IsStale(o, now))
	}

	// Output:
	// day 15: 15 days shipped, stale=false
	// day 16: 16 days shipped, stale=true
}
