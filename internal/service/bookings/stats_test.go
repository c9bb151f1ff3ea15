package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

func price(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	list := []domain.DisplayBooking{
		{CompanionName: "Maria", Status: domain.StatusConfirmed, AmountValue: price(1500), Date: "2024-03-01"},
		{CompanionName: "Maria", Status: domain.StatusPending, AmountValue: price(300), Date: "2024-03-01"},
		{CompanionName: "Julia", Status: domain.StatusConfirmed, AmountValue: price(200), Date: "2024-02-28"},
		{CompanionName: "Companion", Status: domain.StatusCancelled, Date: "-"},
	}
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	stats := ComputeStats(list, now, brl())

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 3, stats.ActiveCompanions)
	assert.Equal(t, 1700.0, stats.Revenue)
	assert.Equal(t, "R$ 1.700", stats.RevenueFormatted)
	assert.Equal(t, 2, stats.TodayBookings)
}
