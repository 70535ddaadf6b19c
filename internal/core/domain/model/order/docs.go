// Package order provides domain entities and business logic for order
// management in the dispatch system. It implements the Order aggregate root
// with lifecycle management and actor-gated state transitions.
//
// The package includes:
//   - Order: The aggregate root managing order identity, delivery details and lifecycle
//   - Details: A value object holding the customer-facing delivery information
//   - Status: A state machine that enforces valid order status transitions
//   - Priority: The urgency class a shop attaches to an order
//
// Key business rules:
//   - Orders must have a valid identifier, owning shop, pickup location and details
//   - Status follows a defined workflow: Pending -> Assigned -> Picked -> Delivered,
//     with Pending -> Cancelled as the only other edge
//   - The owning shop may cancel, the assigned courier may pick and deliver;
//     assignment is a dispatch-side operation rather than an actor request
//   - A courier is attached exactly when the status requires one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
