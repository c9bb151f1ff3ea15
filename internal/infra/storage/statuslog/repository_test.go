package statuslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

func TestBuildInsert(t *testing.T) {
	query, args, err := buildInsert(&domain.StatusLogEntry{
		BookingRef: "doc1",
		Status:     domain.StatusConfirmed,
		Actor:      "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO booking_status_log (booking_ref,status,actor) VALUES ($1,$2,$3) RETURNING id, created_at", query)
	assert.Equal(t, []interface{}{"doc1", "confirmed", "admin"}, args)
}

func TestBuildList(t *testing.T) {
	query, args, err := buildList(domain.StatusLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, booking_ref, status, actor, created_at FROM booking_status_log ORDER BY created_at DESC, id DESC LIMIT 50 OFFSET 0", query)
	assert.Empty(t, args)
}

func TestBuildList_ByBookingRef(t *testing.T) {
	ref := "42"
	query, args, err := buildList(domain.StatusLogFilter{BookingRef: &ref, Limit: 1000, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, booking_ref, status, actor, created_at FROM booking_status_log WHERE booking_ref = $1 ORDER BY created_at DESC, id DESC LIMIT 500 OFFSET 10", query)
	assert.Equal(t, []interface{}{"42"}, args)
}
