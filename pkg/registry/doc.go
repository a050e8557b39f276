// Package registry provides a generic, type-safe name registry. Each
// registry is an ordinary value owned by whoever builds it; there are no
// process-wide tables.
package registry
