// Package shop provides the Shop aggregate root: a store that places
// delivery orders. Shops carry login credentials and an immutable pickup
// position geocoded from their address at registration.
package shop
