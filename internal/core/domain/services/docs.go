// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - RelationshipCoordinator: keeps the bidirectional vessel-cargo
//     association consistent on top of a store with no cross-record
//     transactions
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
