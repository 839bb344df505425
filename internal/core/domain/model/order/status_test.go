package order_test

import (
	"testing"

	"pizzaparty/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Waiting, "Waiting"},
		{order.Preparing, "Preparing"},
		{order.Ready, "Ready"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Waiting, order.Preparing, order.Ready} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_TakeCharge(t *testing.T) {
	t.Run("should transition waiting to preparing when slot is free", func(t *testing.T) {
		newStatus, err := order.Waiting.TakeCharge(0)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, newStatus)
	})

	t.Run("should reject when slot is occupied", func(t *testing.T) {
		newStatus, err := order.Waiting.TakeCharge(1)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrAnotherOrderInPreparation)
		assert.Equal(t, order.Status(0), newStatus)
	})

	t.Run("should reject from preparing", func(t *testing.T) {
		_, err := order.Preparing.TakeCharge(1)

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("should reject from ready", func(t *testing.T) {
		_, err := order.Ready.TakeCharge(0)

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("should reject from unknown", func(t *testing.T) {
		_, err := order.Unknown.TakeCharge(0)

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("state check should win over slot check", func(t *testing.T) {
		// A Ready order with a busy slot is an invalid-state error,
		// not a slot conflict.
		_, err := order.Ready.TakeCharge(1)

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
		assert.NotErrorIs(t, err, order.ErrAnotherOrderInPreparation)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should transition preparing to ready", func(t *testing.T) {
		newStatus, err := order.Preparing.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject from waiting", func(t *testing.T) {
		_, err := order.Waiting.Complete()

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})

	t.Run("should reject from ready", func(t *testing.T) {
		_, err := order.Ready.Complete()

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	})
}
