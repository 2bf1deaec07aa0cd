package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a marketplace order in the system. It is the aggregate root
// shared by the lifecycle service (customer and restaurant actions) and the
// delivery assignment service (courier claim and delivery).
//
// Order maintains these invariants:
//   - At least one line item; every quantity >= 1, every price >= 0
//   - Totals are computed once at creation and never recomputed:
//     total = subtotal + deliveryFee
//   - A courier is bound if and only if the status is picked_up or delivered,
//     and once bound it is never cleared
//   - Status only moves forward along the legal transition graph; terminal
//     statuses accept no further transitions
//   - createdAt <= updatedAt
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through methods that consult the Decide state machine.
type Order struct {
	// id is the unique identifier for the order, assigned at creation
	id kernel.UUID

	// customerID is a weak reference to the ordering customer
	customerID kernel.UUID

	// restaurantID is a weak reference to the fulfilling restaurant
	restaurantID kernel.UUID

	// courierID is the claiming courier's ID (nil until claimed)
	courierID *kernel.UUID

	// items is the ordered sequence of line item snapshots
	items []Item

	// subtotal is the sum of item price x quantity, fixed at creation
	subtotal kernel.Money

	// deliveryFee is the fixed fee charged on top of the subtotal
	deliveryFee kernel.Money

	// total is subtotal + deliveryFee, persisted at creation
	total kernel.Money

	// deliveryAddress is the free-text destination
	deliveryAddress string

	// paymentMethod is how the customer pays
	paymentMethod PaymentMethod

	// paymentStatus is informational and never gates status transitions
	paymentStatus PaymentStatus

	// notes is optional free text from the customer
	notes string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order at customer checkout. The order starts in
// pending status with payment status unpaid; subtotal and total are computed
// here from the item snapshots and the fixed delivery fee, never taken from
// the client.
//
// Returns a validation error if any identifier is invalid, the item list is
// empty, the delivery address is blank, or the payment method or fee is
// invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	deliveryFee kernel.Money,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentStatusUnpaid,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	o.subtotal = 0
	for _, item := range o.items {
		o.subtotal = o.subtotal.Add(item.Total())
	}
	o.total = o.subtotal.Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the stored status, totals, and timestamps as-is, but it still
// verifies the cross-field invariants so a corrupted row cannot produce an
// inconsistent aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	courierID *kernel.UUID,
	items []Item,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	notes string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryFee(deliveryFee),
		status.Validate(),
		paymentStatus.Validate(),
		subtotal.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.total = total
	o.status = status

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("updatedAt %s precedes createdAt %s", updatedAt, createdAt),
		)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the claiming courier's ID, or nil if the order has not been
// claimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of item price x quantity fixed at creation.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the fixed delivery fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal + deliveryFee. It never changes after creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the free-text delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns whether the order has been paid.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Notes returns the optional customer notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// MarkPaid records a successful charge from the payment collaborator.
// Payment status is informational: this never touches the order status.
func (o *Order) MarkPaid() {
	o.paymentStatus = PaymentStatusPaid
	o.touch()
}

// MarkPaymentFailed records a failed charge from the payment collaborator.
func (o *Order) MarkPaymentFailed() {
	o.paymentStatus = PaymentStatusFailed
	o.touch()
}

// TransitionTo applies a status change requested by an actor. It consults the
// Decide state machine and either applies the new status or returns the
// machine's rejection untouched, leaving the order unchanged.
//
// TransitionTo never binds a courier; claiming goes through Claim.
func (o *Order) TransitionTo(requested Status, actor Role) *Rejection {
	newStatus, rejection := Decide(o.status, requested, actor)
	if rejection != nil {
		return rejection
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Claim atomically binds a courier to the order and moves it to picked_up,
// provided the ready -> picked_up edge is legal from the current status.
// The courier binding is never cleared afterwards, even after delivery.
//
// The in-memory claim is only half of the story: the repository's
// compare-and-swap is what serializes concurrent claims across replicas.
func (o *Order) Claim(courierID kernel.UUID) *Rejection {
	newStatus, rejection := Decide(o.status, StatusPickedUp, RoleCourier)
	if rejection != nil {
		return rejection
	}

	o.status = newStatus
	o.courierID = &courierID
	o.touch()
	return nil
}

// touch refreshes updatedAt. createdAt <= updatedAt is preserved because
// createdAt is never modified after construction.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", err)
	}
	o.deliveryFee = fee
	return nil
}
