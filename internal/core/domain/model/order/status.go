package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The status field is the
// single source of truth for workflow position; every mutation of it goes
// through Decide, so the transition rules live in exactly one place.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> picked_up ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Transitions are forward-only. delivered and cancelled are terminal.
// Cancellation is disallowed once an order reaches ready: the food is already
// committed and the pickup flow has started.
type Status string

const (
	// StatusPending is the initial status when a customer checks out.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the restaurant has accepted the order.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the restaurant is preparing the food.
	StatusPreparing Status = "preparing"

	// StatusReady indicates the food is ready and waiting for a courier claim.
	StatusReady Status = "ready"

	// StatusPickedUp indicates a courier has claimed the order and holds it.
	StatusPickedUp Status = "picked_up"

	// StatusDelivered indicates the courier completed the delivery. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was cancelled before ready. Terminal.
	StatusCancelled Status = "cancelled"
)

// Role identifies the actor attempting a status change. The state machine's
// edge table is keyed by role, making it the single source of truth for who
// may perform which transition.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleCourier    Role = "courier"
)

// RejectionReason classifies why the state machine refused a transition.
type RejectionReason string

const (
	// ReasonInvalidTransition means the requested edge is not in the legal
	// transition graph.
	ReasonInvalidTransition RejectionReason = "invalid-transition"

	// ReasonUnauthorizedRole means the edge exists but the acting role may not
	// perform it.
	ReasonUnauthorizedRole RejectionReason = "unauthorized-role"

	// ReasonTerminalState means the order already reached delivered or
	// cancelled and accepts no further transitions.
	ReasonTerminalState RejectionReason = "terminal-state"
)

// Rejection is the value returned by Decide when a transition is refused.
// The machine never panics and never performs I/O; callers inspect the
// rejection and decide which error to surface.
type Rejection struct {
	Reason    RejectionReason
	Current   Status
	Requested Status
	Actor     Role
}

func (r *Rejection) String() string {
	return fmt.Sprintf("%s -> %s by %s: %s", r.Current, r.Requested, r.Actor, r.Reason)
}

// transitionEdge is a directed edge in the legal transition graph.
type transitionEdge struct {
	from Status
	to   Status
}

// transitionRoles maps every legal edge to the roles allowed to traverse it.
// Any edge absent from this table is illegal for every role.
func transitionRoles() map[transitionEdge][]Role {
	return map[transitionEdge][]Role{
		{StatusPending, StatusConfirmed}:   {RoleRestaurant},
		{StatusPending, StatusCancelled}:   {RoleCustomer, RoleRestaurant},
		{StatusConfirmed, StatusPreparing}: {RoleRestaurant},
		{StatusConfirmed, StatusCancelled}: {RoleRestaurant},
		{StatusPreparing, StatusReady}:     {RoleRestaurant},
		{StatusReady, StatusPickedUp}:      {RoleCourier},
		{StatusPickedUp, StatusDelivered}:  {RoleCourier},
	}
}

// getValidStatusStrings returns the set of valid statuses to support validation.
func getValidStatusStrings() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusConfirmed: {},
		StatusPreparing: {},
		StatusReady:     {},
		StatusPickedUp:  {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// Validate checks if the Status value is one of the seven defined statuses.
// It is used to reject statuses arriving from external sources (requests,
// database rows) before they reach the state machine.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks if the Role value is one of the three defined actor roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleCourier:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier binding. A courier is bound if and only if the order has been
// picked up or delivered; once bound at claim time it is never cleared.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != StatusPickedUp && s != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", string(s)),
		)
	}

	if !courier && (s == StatusPickedUp || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", string(s)),
		)
	}

	return nil
}

// Decide is the order state machine: it validates a requested transition and
// returns the new status, or a Rejection explaining the refusal. It is a pure
// function with no I/O and it never panics for any input combination.
//
// Precedence of rejections:
//  1. terminal-state: the current status is delivered or cancelled
//  2. invalid-transition: the edge is not in the legal graph
//  3. unauthorized-role: the edge exists but not for this actor
func Decide(current, requested Status, actor Role) (Status, *Rejection) {
	reject := func(reason RejectionReason) (Status, *Rejection) {
		return "", &Rejection{
			Reason:    reason,
			Current:   current,
			Requested: requested,
			Actor:     actor,
		}
	}

	if current.IsTerminal() {
		return reject(ReasonTerminalState)
	}

	roles, ok := transitionRoles()[transitionEdge{from: current, to: requested}]
	if !ok {
		return reject(ReasonInvalidTransition)
	}

	for _, role := range roles {
		if role == actor {
			return requested, nil
		}
	}

	return reject(ReasonUnauthorizedRole)
}
