// Package services provides domain services for logic that does not belong to a
// single aggregate of the shipping core.
//
// The package includes:
//   - BranchLocator: picks the branch closest to a geographic point
//   - TrackingCodeGenerator: produces the public and internal tracking codes of a shipment
package services
