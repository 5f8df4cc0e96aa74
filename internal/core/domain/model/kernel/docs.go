// Package kernel holds the value objects shared by every aggregate of the
// shipping core: UUID identifiers and geographic points.
package kernel
