// Package kernel holds the domain primitives shared by every aggregate of the
// storefront: at the moment only the UUID identifier value object.
package kernel
