// Package kernel provides core domain primitives for the harbor record service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - ID: a value object for store-assigned numeric record identifiers
//
// Record identity is allocated by the document store on first save, so the
// domain distinguishes between aggregates that have been persisted (valid ID)
// and freshly constructed ones (no ID yet). The ID value object enforces the
// positive-integer rule and provides comparison and formatting helpers.
package kernel
