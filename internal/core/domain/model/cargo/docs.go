// Package cargo contains the Cargo aggregate root and the Carrier value object.
//
// A cargo item is either unloaded or loaded on exactly one vessel. The
// cargo-side half of the association is the carrier pointer (vessel id plus a
// denormalized copy of the vessel name); the vessel-side half is the embedded
// cargo reference list. Both halves are mutated only by the relationship
// coordinator.
//
// State machine per cargo item: Unloaded -> Loaded(vessel) -> Unloaded.
// Load on an already loaded item is a conflict; Unload against a vessel that
// is not the current carrier is a not-found condition.
package cargo
