package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommand_Validate_WhenConstructedProperly_ShouldReturnNoError(t *testing.T) {
	// Arrange
	cmd, err := commands.NewConfirmOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	require.NoError(t, err)
}

func TestConfirmOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	// Arrange
	var cmd commands.ConfirmOrderCommand // zero-value command

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.Equal(t, commands.ErrConfirmOrderCommandIsNotConstructed, err)
}

func TestNewConfirmOrderCommand_WhenOrderIDIsEmpty_ShouldReturnError(t *testing.T) {
	// Arrange
	var emptyID kernel.UUID

	// Act
	_, err := commands.NewConfirmOrderCommand(emptyID)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
