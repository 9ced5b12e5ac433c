package delivery_test

import (
	"fmt"
	"testing"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []delivery.Status{
	delivery.Pending,
	delivery.Assigned,
	delivery.PickupInProgress,
	delivery.PickedUp,
	delivery.InTransit,
	delivery.Delivered,
	delivery.Failed,
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		t.Run(s.String(), func(t *testing.T) {
			parsed, err := delivery.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}

	_, err := delivery.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_CanAdvanceTo(t *testing.T) {
	allowed := map[string]bool{
		"assigned->pickup_in_progress":  true,
		"pickup_in_progress->picked_up": true,
		"pickup_in_progress->failed":    true,
		"picked_up->in_transit":         true,
		"picked_up->failed":             true,
		"in_transit->delivered":         true,
		"in_transit->failed":            true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			key := fmt.Sprintf("%s->%s", from, to)
			t.Run(key, func(t *testing.T) {
				assert.Equal(t, allowed[key], from.CanAdvanceTo(to))
			})
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, s == delivery.Delivered || s == delivery.Failed, s.IsTerminal(), s.String())
	}
}

func TestStatus_CanAssign(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, s == delivery.Pending || s == delivery.Assigned, s.CanAssign(), s.String())
	}
}

func TestTransitions_ReturnsCopy(t *testing.T) {
	table := delivery.Transitions()
	table[delivery.Pending] = []delivery.Status{delivery.Delivered}

	assert.False(t, delivery.Pending.CanAdvanceTo(delivery.Delivered))
	assert.Len(t, delivery.Transitions(), 4)
}
