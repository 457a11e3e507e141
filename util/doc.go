// Package util provides small generic helpers shared across the client:
// first-non-empty resolution, layered map merging and stable key ordering.
package util
