// Package services provides domain services that hold business rules spanning
// more than one aggregate or not owned by any single one.
//
// The package includes:
//   - RatingCalculator: summarizes visible review ratings into a product rating
//   - ShipmentAging: decides when a Shipping order is stale enough to be delivered by the system
package services
