package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusPickedUp,
		order.StatusDelivered,
		order.StatusCancelled,
	}
}

func allRoles() []order.Role {
	return []order.Role{order.RoleCustomer, order.RoleRestaurant, order.RoleCourier}
}

// legalEdges is the complete legal transition set: from -> to -> allowed roles.
func legalEdges() map[order.Status]map[order.Status][]order.Role {
	return map[order.Status]map[order.Status][]order.Role{
		order.StatusPending: {
			order.StatusConfirmed: {order.RoleRestaurant},
			order.StatusCancelled: {order.RoleCustomer, order.RoleRestaurant},
		},
		order.StatusConfirmed: {
			order.StatusPreparing: {order.RoleRestaurant},
			order.StatusCancelled: {order.RoleRestaurant},
		},
		order.StatusPreparing: {
			order.StatusReady: {order.RoleRestaurant},
		},
		order.StatusReady: {
			order.StatusPickedUp: {order.RoleCourier},
		},
		order.StatusPickedUp: {
			order.StatusDelivered: {order.RoleCourier},
		},
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject undefined statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			"",
			"shipped",
			"PENDING",
			"picked-up",
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
	})

	t.Run("all other statuses are not terminal", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.StatusDelivered || status == order.StatusCancelled {
				continue
			}
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate the three actor roles", func(t *testing.T) {
		for _, role := range allRoles() {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		err := order.Role("admin").Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestDecide_LegalEdges(t *testing.T) {
	for from, edges := range legalEdges() {
		for to, roles := range edges {
			for _, role := range roles {
				t.Run(fmt.Sprintf("%s->%s by %s is accepted", from, to, role), func(t *testing.T) {
					newStatus, rejection := order.Decide(from, to, role)

					require.Nil(t, rejection)
					assert.Equal(t, to, newStatus)
				})
			}
		}
	}
}

func TestDecide_RejectsEdgesNotInLegalSet(t *testing.T) {
	// Every (current, requested) pair outside the legal edge set is rejected
	// with invalid-transition, regardless of the acting role.
	edges := legalEdges()

	for _, from := range allStatuses() {
		if from.IsTerminal() {
			continue
		}
		for _, to := range allStatuses() {
			if _, legal := edges[from][to]; legal {
				continue
			}
			for _, role := range allRoles() {
				t.Run(fmt.Sprintf("%s->%s by %s", from, to, role), func(t *testing.T) {
					_, rejection := order.Decide(from, to, role)

					require.NotNil(t, rejection)
					assert.Equal(t, order.ReasonInvalidTransition, rejection.Reason)
					assert.Equal(t, from, rejection.Current)
					assert.Equal(t, to, rejection.Requested)
					assert.Equal(t, role, rejection.Actor)
				})
			}
		}
	}
}

func TestDecide_RejectsRoleMismatches(t *testing.T) {
	for from, edges := range legalEdges() {
		for to, allowedRoles := range edges {
			for _, role := range allRoles() {
				allowed := false
				for _, r := range allowedRoles {
					if r == role {
						allowed = true
					}
				}
				if allowed {
					continue
				}

				t.Run(fmt.Sprintf("%s->%s by %s", from, to, role), func(t *testing.T) {
					_, rejection := order.Decide(from, to, role)

					require.NotNil(t, rejection)
					assert.Equal(t, order.ReasonUnauthorizedRole, rejection.Reason)
				})
			}
		}
	}
}

func TestDecide_TerminalStates(t *testing.T) {
	// Every transition request from a terminal status is rejected with
	// terminal-state, even requests that would otherwise be role mismatches
	// or unknown edges.
	for _, from := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		for _, to := range allStatuses() {
			for _, role := range allRoles() {
				t.Run(fmt.Sprintf("%s->%s by %s", from, to, role), func(t *testing.T) {
					_, rejection := order.Decide(from, to, role)

					require.NotNil(t, rejection)
					assert.Equal(t, order.ReasonTerminalState, rejection.Reason)
				})
			}
		}
	}
}

func TestDecide_CancellationCutoff(t *testing.T) {
	t.Run("cancellation is allowed before ready", func(t *testing.T) {
		_, rejection := order.Decide(order.StatusPending, order.StatusCancelled, order.RoleCustomer)
		require.Nil(t, rejection)

		_, rejection = order.Decide(order.StatusPending, order.StatusCancelled, order.RoleRestaurant)
		require.Nil(t, rejection)

		_, rejection = order.Decide(order.StatusConfirmed, order.StatusCancelled, order.RoleRestaurant)
		require.Nil(t, rejection)
	})

	t.Run("customers cannot cancel confirmed orders", func(t *testing.T) {
		_, rejection := order.Decide(order.StatusConfirmed, order.StatusCancelled, order.RoleCustomer)

		require.NotNil(t, rejection)
		assert.Equal(t, order.ReasonUnauthorizedRole, rejection.Reason)
	})

	t.Run("cancellation from ready onward always rejects", func(t *testing.T) {
		cutoffStatuses := []order.Status{
			order.StatusPreparing,
			order.StatusReady,
			order.StatusPickedUp,
		}

		for _, from := range cutoffStatuses {
			for _, role := range allRoles() {
				_, rejection := order.Decide(from, order.StatusCancelled, role)

				require.NotNil(t, rejection, "cancel from %s by %s should reject", from, role)
				assert.Equal(t, order.ReasonInvalidTransition, rejection.Reason)
			}
		}

		for _, role := range allRoles() {
			_, rejection := order.Decide(order.StatusDelivered, order.StatusCancelled, role)

			require.NotNil(t, rejection)
			assert.Equal(t, order.ReasonTerminalState, rejection.Reason)
		}
	})
}

func TestDecide_NoBackwardTransitions(t *testing.T) {
	forward := []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusPickedUp,
	}

	for i, from := range forward {
		for j := 0; j < i; j++ {
			to := forward[j]
			for _, role := range allRoles() {
				_, rejection := order.Decide(from, to, role)

				require.NotNil(t, rejection, "%s->%s by %s should reject", from, to, role)
				assert.Equal(t, order.ReasonInvalidTransition, rejection.Reason)
			}
		}
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("picked_up and delivered require a courier", func(t *testing.T) {
		require.NoError(t, order.StatusPickedUp.ValidateCanHaveCourier(true))
		require.NoError(t, order.StatusDelivered.ValidateCanHaveCourier(true))
		require.Error(t, order.StatusPickedUp.ValidateCanHaveCourier(false))
		require.Error(t, order.StatusDelivered.ValidateCanHaveCourier(false))
	})

	t.Run("earlier statuses must not have a courier", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusCancelled,
		} {
			require.NoError(t, status.ValidateCanHaveCourier(false), "%s without courier", status)
			require.Error(t, status.ValidateCanHaveCourier(true), "%s with courier", status)
		}
	})
}
