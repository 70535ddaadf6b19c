package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when the customer phone is empty.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrDeliveryDistrictIsRequired is returned when the delivery district is empty.
	ErrDeliveryDistrictIsRequired = errs.NewValueIsRequiredError("deliveryDistrict")
	// ErrPackageDetailsAreRequired is returned when the package description is empty.
	ErrPackageDetailsAreRequired = errs.NewValueIsRequiredError("packageDetails")
)

// Details holds the customer-facing delivery information a shop provides when
// creating an order. It is a value object: validated once at construction of
// the owning Order and immutable afterwards.
//
// All fields except Notes are required. Priority defaults to PriorityNormal
// when left zero at the transport layer, never here.
type Details struct {
	// CustomerName identifies the recipient.
	CustomerName string
	// CustomerPhone is the recipient's contact number.
	CustomerPhone string
	// DeliveryAddress is the free-form destination address.
	DeliveryAddress string
	// DeliveryDistrict is the administrative district of the destination.
	DeliveryDistrict string
	// PackageDetails describes the package contents.
	PackageDetails string
	// Priority is the urgency class requested by the shop.
	Priority Priority
	// Notes carries optional handling instructions.
	Notes string
}

// Validate checks that all required delivery details are present and the
// priority is a known value.
func (d Details) Validate() error {
	return errors.Join(
		d.validateCustomerName(),
		d.validateCustomerPhone(),
		d.validateDeliveryAddress(),
		d.validateDeliveryDistrict(),
		d.validatePackageDetails(),
		d.Priority.Validate(),
	)
}

func (d Details) validateCustomerName() error {
	if d.CustomerName == "" {
		return ErrCustomerNameIsRequired
	}
	return nil
}

func (d Details) validateCustomerPhone() error {
	if d.CustomerPhone == "" {
		return ErrCustomerPhoneIsRequired
	}
	return nil
}

func (d Details) validateDeliveryAddress() error {
	if d.DeliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	return nil
}

func (d Details) validateDeliveryDistrict() error {
	if d.DeliveryDistrict == "" {
		return ErrDeliveryDistrictIsRequired
	}
	return nil
}

func (d Details) validatePackageDetails() error {
	if d.PackageDetails == "" {
		return ErrPackageDetailsAreRequired
	}
	return nil
}

// Order represents a delivery order. It is the aggregate root that manages the
// order lifecycle from creation through courier assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning shop identifier
//   - Must have a valid pickup location (the shop's geocoded position)
//   - Delivery details must pass Details validation
//   - Status transitions follow the rules encoded in Status
//   - A courier is attached exactly when the status requires one
//   - Can only be created through NewOrder or RestoreOrder
//
// Lifecycle transitions are actor-gated: the owning shop may cancel a pending
// order, the assigned courier may mark it picked and then delivered.
// Assignment itself is a system action performed by dispatch, not a transition
// an actor may request.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// shopID identifies the shop that created the order
	shopID kernel.UUID

	// courierID is the assigned courier's ID (nil while unassigned)
	courierID *kernel.UUID

	// pickupLocation is where the courier collects the package
	pickupLocation kernel.GeoPoint

	// details holds the customer-facing delivery information
	details Details

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was placed
	createdAt time.Time

	// assignedAt, pickedAt and deliveredAt record when the corresponding
	// transition happened (nil until it does)
	assignedAt  *time.Time
	pickedAt    *time.Time
	deliveredAt *time.Time

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. This is the only way to create
// a fresh order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order
//   - shopID: Identifier of the shop placing the order
//   - pickupLocation: The shop's position, where the package is collected
//   - details: Customer-facing delivery information
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The order starts in Pending status with no courier and createdAt set to the
// current UTC time. Dispatch assigns a courier separately via Assign.
func NewOrder(id, shopID kernel.UUID, pickupLocation kernel.GeoPoint, details Details) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setShopID(shopID),
		order.setPickupLocation(pickupLocation),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts the full persisted state, including the current
// status, an optional courier and the lifecycle timestamps.
//
// Beyond field validation it enforces cross-field consistency: the courier
// must be present exactly when the status requires one, so a corrupted row
// cannot produce an assigned order without a courier or a pending order
// with one.
func RestoreOrder(
	id, shopID kernel.UUID,
	courierID *kernel.UUID,
	pickupLocation kernel.GeoPoint,
	details Details,
	status Status,
	createdAt time.Time,
	assignedAt, pickedAt, deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:   createdAt,
		assignedAt:  assignedAt,
		pickedAt:    pickedAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setShopID(shopID),
		order.setPickupLocation(pickupLocation),
		order.setDetails(details),
		order.setStatus(status),
		order.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveCourier(order.courierID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. The zero value of Order is invalid.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopID returns the identifier of the shop that placed the order.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// CourierID returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// PickupLocation returns the position where the package is collected.
func (o *Order) PickupLocation() kernel.GeoPoint {
	return o.pickupLocation
}

// Details returns the customer-facing delivery information.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when a courier was assigned, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// PickedAt returns when the package was collected, or nil.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// DeliveredAt returns when the package was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Assign attaches a courier to the order and moves it to Assigned.
//
// This is a dispatch-side operation, not an actor-requested transition: it is
// invoked when an order is created with a courier in range, or later by the
// redispatch job for orders that started out pending.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be in Pending status
//
// On success the status becomes Assigned, the courier is recorded and
// assignedAt is stamped with the current UTC time.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.courierID = &courierID
	o.assignedAt = &now
	return nil
}

// TransitionTo applies an actor-requested status transition.
//
// Authorization is checked before state validity: a shop may only touch its
// own orders and a courier only orders assigned to them, and a caller who
// fails that check learns nothing about whether the transition itself would
// have been legal.
//
// Permitted requests:
//   - shop actor: Cancelled (only while Pending)
//   - courier actor: Picked (only while Assigned), Delivered (only while Picked)
//
// Any other requested status, including one outside the actor's role, is
// rejected as an invalid transition. Picked stamps pickedAt and Delivered
// stamps deliveredAt with the current UTC time.
func (o *Order) TransitionTo(actor kernel.Actor, requested Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	if err := o.authorize(actor); err != nil {
		return err
	}

	switch {
	case actor.IsShop() && requested == Cancelled:
		return o.cancel()
	case actor.IsCourier() && requested == Picked:
		return o.pick()
	case actor.IsCourier() && requested == Delivered:
		return o.deliver()
	default:
		return errs.NewInvalidTransitionError(o.status.String(), requested.String())
	}
}

// authorize checks that the actor may operate on this order at all.
// Shops must own the order; couriers must be its assignee.
func (o *Order) authorize(actor kernel.Actor) error {
	if actor.IsShop() {
		if !o.shopID.IsEqual(actor.ID()) {
			return errs.NewNotAuthorizedError(actor.ID().String(), "order "+o.id.String())
		}
		return nil
	}

	if o.courierID == nil || !o.courierID.IsEqual(actor.ID()) {
		return errs.NewNotAuthorizedError(actor.ID().String(), "order "+o.id.String())
	}
	return nil
}

// cancel withdraws a pending order.
func (o *Order) cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// pick marks the package as collected by the assigned courier.
func (o *Order) pick() error {
	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.pickedAt = &now
	return nil
}

// deliver marks the package as handed to the customer.
func (o *Order) deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setShopID validates and sets the owning shop's identifier.
// This is a private method used only during construction.
func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	o.shopID = shopID
	return nil
}

// setCourierID validates and sets the assigned courier, if any.
// This is a private method used only during restoration.
func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	o.courierID = courierID
	return nil
}

// setPickupLocation validates and sets the pickup position.
// This is a private method used only during construction.
func (o *Order) setPickupLocation(pickupLocation kernel.GeoPoint) error {
	if err := pickupLocation.Validate(); err != nil {
		return err
	}
	o.pickupLocation = pickupLocation
	return nil
}

// setDetails validates and sets the delivery details.
// This is a private method used only during construction.
func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
