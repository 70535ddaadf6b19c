// Package kernel contains the shared value objects of the dispatch domain:
// UUID identity, GeoPoint coordinates with great-circle distance, and the
// Actor/Role pair supplied by authentication.
//
// All types in this package are immutable value objects. Zero values are
// invalid; instances must be created through the provided constructors and
// expose a Validate method for integrity checks when crossing boundaries
// (persistence, transport).
package kernel
