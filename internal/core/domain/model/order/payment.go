package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is the way the customer pays for an order.
type PaymentMethod string

const (
	// PaymentMethodCash is paid to the courier on delivery.
	PaymentMethodCash PaymentMethod = "cash"

	// PaymentMethodCard is prepaid through the payment collaborator at checkout.
	PaymentMethodCard PaymentMethod = "card"
)

// Validate checks if the PaymentMethod is one of the supported methods.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus tracks whether the order has been paid. It is informational
// and fully decoupled from the order status machine: no status transition
// consults it.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Validate checks if the PaymentStatus is one of the defined values.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(s)))
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	return string(s)
}
