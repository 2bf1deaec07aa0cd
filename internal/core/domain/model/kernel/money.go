package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in the smallest
// currency unit (cents). Amounts are never negative: item prices, fees, and
// totals are all absolute values.
//
// Money is stored as int64 to keep arithmetic exact; float types are never
// used for amounts.
type Money int64

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	m := Money(cents)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

// Cents returns the raw amount in the smallest currency unit.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return m * Money(quantity)
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m == other
}

// String renders the amount in cents, e.g. "1050".
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
