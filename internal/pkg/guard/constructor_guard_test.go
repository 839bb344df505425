package guard_test

import (
	"errors"
	"testing"

	"pizzaparty/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	var errCommandNotConstructed = errors.New("command must be created via its constructor")

	type command struct {
		description string
		guard       guard.ConstructorGuard
	}

	newCommand := func(description string) (command, error) {
		if description == "" {
			return command{}, errors.New("description is required")
		}
		return command{description: description, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_passes_validation", func(t *testing.T) {
		cmd, err := newCommand("Margherita")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd command

		err := cmd.guard.Validate(errCommandNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errCommandNotConstructed, err)
	})
}
