// Package vessel contains the Vessel aggregate root.
//
// A vessel is a carrier record owned by exactly one principal. It embeds an
// ordered list of lightweight cargo references (id only); the matching
// cargo-side carrier pointers are kept symmetric by the relationship
// coordinator in the services package, which is the only component allowed to
// mutate both sides of the association.
//
// The aggregate enforces local invariants only: name format and uniqueness of
// the embedded reference list. Cross-record consistency is out of its reach
// because the backing document store offers no multi-record atomicity.
package vessel
