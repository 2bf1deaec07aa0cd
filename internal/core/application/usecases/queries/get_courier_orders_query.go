package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// CourierOrdersScope selects which slice of a courier's orders to list.
type CourierOrdersScope string

const (
	// CourierOrdersScopeCurrent lists deliveries in flight (picked up, not
	// yet delivered).
	CourierOrdersScopeCurrent CourierOrdersScope = "current"
	// CourierOrdersScopeHistory lists completed deliveries.
	CourierOrdersScopeHistory CourierOrdersScope = "history"
)

func (s CourierOrdersScope) Validate() error {
	switch s {
	case CourierOrdersScopeCurrent, CourierOrdersScopeHistory:
		return nil
	default:
		return errs.NewValueIsInvalidError("scope")
	}
}

// GetCourierOrdersQuery lists a courier's bound orders, newest first,
// narrowed to in-flight or completed deliveries.
type GetCourierOrdersQuery struct {
	courierID kernel.UUID
	scope     CourierOrdersScope

	guard guard.ConstructorGuard
}

func NewGetCourierOrdersQuery(courierID kernel.UUID, scope CourierOrdersScope) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("courierId", err)
	}
	if err := scope.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		scope:     scope,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetCourierOrdersQuery) Scope() CourierOrdersScope {
	return q.scope
}
