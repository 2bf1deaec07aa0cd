// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence through the
// order store, and best-effort event emission after accepted transitions.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide a transaction boundary for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Only multi-statement commands (order creation) call Begin; the
	// status-mutation commands rely on the atomicity of a single
	// compare-and-swap statement instead.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository, bound to the
	// active transaction when one has been started.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages persistence for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Each command handler invocation gets a fresh instance, keeping
	// concurrent requests isolated from each other.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
