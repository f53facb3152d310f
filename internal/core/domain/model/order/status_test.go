package order_test

import (
	"testing"

	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.OrderPlaced, "orderPlaced"},
		{order.Preparing, "preparing"},
		{order.ReadyForPickup, "readyForPickup"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, s := range order.Statuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("delivered")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Progress(t *testing.T) {
	assert.Less(t, order.OrderPlaced.Progress(), order.Preparing.Progress())
	assert.Less(t, order.Preparing.Progress(), order.ReadyForPickup.Progress())
	assert.Less(t, order.ReadyForPickup.Progress(), order.Completed.Progress())
	assert.Equal(t, 0, order.Cancelled.Progress())
	assert.Equal(t, 0, order.Unknown.Progress())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.OrderPlaced.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.ReadyForPickup.IsTerminal())
}
