package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []ShippingStatus{ShippingPending, ShippingShipped, ShippingDelivered}

func TestCanTransition(t *testing.T) {
	t.Run("same-state transitions are always legal", func(t *testing.T) {
		for _, s := range allStatuses {
			assert.True(t, CanTransition(s, s), "self transition for %s", s)
		}
	})

	t.Run("transition table", func(t *testing.T) {
		tests := []struct {
			from, to ShippingStatus
			want     bool
		}{
			{ShippingPending, ShippingShipped, true},
			{ShippingPending, ShippingDelivered, true},
			{ShippingShipped, ShippingDelivered, true},
			{ShippingShipped, ShippingPending, false},
			{ShippingDelivered, ShippingPending, false},
			{ShippingDelivered, ShippingShipped, false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
		}
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		for _, to := range allStatuses {
			if to == ShippingDelivered {
				continue
			}
			assert.False(t, CanTransition(ShippingDelivered, to),
				"DELIVERED must have no outgoing non-identity transitions")
		}
	})
}

func TestTransition(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		for _, s := range allStatuses {
			got, err := Transition(s, s)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("legal move returns target", func(t *testing.T) {
		got, err := Transition(ShippingPending, ShippingShipped)
		require.NoError(t, err)
		assert.Equal(t, ShippingShipped, got)
	})

	t.Run("backward move names both states", func(t *testing.T) {
		_, err := Transition(ShippingDelivered, ShippingPending)
		assert.Equal(t, ETRANSITION, ErrorCode(err))
		assert.Contains(t, ErrorMessage(err), "DELIVERED")
		assert.Contains(t, ErrorMessage(err), "PENDING")
	})
}

func TestParseShippingStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseShippingStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseShippingStatus("RETURNED")
	assert.Equal(t, EPARAMETER, ErrorCode(err))
}
