// Package services contains domain services that coordinate business logic
// spanning multiple aggregates.
//
// The central service is OrderDispatcher, which implements the
// nearest-courier assignment policy: among the active couriers within the
// assignment radius of an order's pickup point, the closest one (by haversine
// distance, ties broken on courier ID) is assigned. Domain services here are
// pure: they receive fully loaded aggregates and never touch persistence.
package services
