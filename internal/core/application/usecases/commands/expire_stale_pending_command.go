package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrExpireStalePendingCommandIsNotConstructed = errors.New(
	"ExpireStalePendingCommand must be created via NewExpireStalePendingCommand constructor",
)

// ExpireStalePendingCommand cancels pending orders that no restaurant has
// acted on within the allowed age. Expiry is an ordinary guarded cancellation
// on behalf of the restaurant; an order confirmed concurrently simply wins
// its compare-and-swap and stays alive.
type ExpireStalePendingCommand struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStalePendingCommand creates an expiry command.
// maxAge is how long a pending order may wait before being cancelled; it
// must be positive.
func NewExpireStalePendingCommand(maxAge time.Duration) (ExpireStalePendingCommand, error) {
	if maxAge <= 0 {
		return ExpireStalePendingCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return ExpireStalePendingCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireStalePendingCommandIsNotConstructed if validation fails.
func (c ExpireStalePendingCommand) Validate() error {
	return c.guard.Validate(ErrExpireStalePendingCommandIsNotConstructed)
}

// MaxAge returns how long a pending order may wait before expiry.
func (c ExpireStalePendingCommand) MaxAge() time.Duration {
	return c.maxAge
}
