package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want BookingStatus
	}{
		{"null", nil, StatusPending},
		{"Accepted", strPtr("Accepted"), StatusConfirmed},
		{"accept", strPtr("accept"), StatusConfirmed},
		{"APPROVED", strPtr("APPROVED"), StatusConfirmed},
		{"Cancelled", strPtr("Cancelled"), StatusCancelled},
		{"CANCELED", strPtr("CANCELED"), StatusCancelled},
		{"PENDING", strPtr("PENDING"), StatusPending},
		{"Confirmed", strPtr("Confirmed"), StatusConfirmed},
		{"weird_value", strPtr("weird_value"), StatusPending},
		{"empty", strPtr(""), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.raw))
		})
	}
}

func TestNormalizeStatus_DoesNotMutateInput(t *testing.T) {
	raw := "APPROVED"
	_ = NormalizeStatus(&raw)
	assert.Equal(t, "APPROVED", raw)
}

func TestStatusAliases_OnlyMapToCanonical(t *testing.T) {
	for token, status := range StatusAliases {
		assert.True(t, status.IsCanonical(), "alias %q", token)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	for _, raw := range []string{"", "approved", "Confirmed", "done"} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, raw)
	}
}
