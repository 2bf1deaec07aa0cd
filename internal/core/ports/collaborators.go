package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// AuthClaims is the result of verifying a bearer token with the auth
// collaborator: who the caller is and which actor role they hold.
type AuthClaims struct {
	UserID kernel.UUID
	Role   order.Role
}

// TokenVerifier is the contract consumed from the auth service. Token
// issuance and user registration live entirely in that service; this side
// only needs "verify bearer token -> {userId, role}".
type TokenVerifier interface {
	// Verify resolves a bearer token to claims. Returns an error for
	// missing, malformed, or expired tokens.
	Verify(ctx context.Context, token string) (AuthClaims, error)
}

// RestaurantCatalog is the contract consumed from the restaurant/menu
// service. Catalog CRUD is out of scope; order creation only needs existence
// checks, and restaurant-scoped reads need the owner's restaurant.
type RestaurantCatalog interface {
	// Exists reports whether the restaurant id is known to the catalog.
	Exists(ctx context.Context, restaurantID kernel.UUID) (bool, error)

	// GetOrCreateDefault resolves the restaurant owned by the given user,
	// creating a default one on first use. This makes the catalog's implicit
	// auto-create-on-first-visit behavior an explicit operation.
	GetOrCreateDefault(ctx context.Context, ownerID kernel.UUID) (kernel.UUID, error)
}

// PaymentGateway is the contract consumed from the payment processor. Only
// the outcome of a prepaid card charge matters to the order workflow; capture
// mechanics live in the payment service.
type PaymentGateway interface {
	// ConfirmPrepaid reports whether the prepaid card charge for the order
	// succeeded. The boolean is the charge outcome; the error is reserved for
	// transport failures.
	ConfirmPrepaid(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (bool, error)
}

// OrderEventPublisher is the notification hook fired on every accepted
// transition. Publishing is best-effort: implementations may fail without
// affecting the state change that triggered the event.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
