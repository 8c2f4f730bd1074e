// Package queries holds the read side of the storefront order service. Handlers
// read straight from PostgreSQL with raw SQL through *gorm.DB and return flat
// view structs; they never load aggregates or open a unit of work.
package queries
