package bookings

import (
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// ComputeStats сводка для карточек дашборда.
// Выручка считается по подтвержденным бронированиям из числовой цены.
func ComputeStats(list []domain.DisplayBooking, now time.Time, amounts AmountFormatter) models.Stats {
	today := now.UTC().Format(domain.DateFormat)
	companions := make(map[string]struct{}, len(list))

	stats := models.Stats{TotalBookings: len(list)}
	for _, b := range list {
		companions[b.CompanionName] = struct{}{}

		if b.Status == domain.StatusPending {
			stats.PendingBookings++
		}
		if b.Status == domain.StatusConfirmed && b.AmountValue != nil {
			stats.Revenue += *b.AmountValue
		}
		if b.Date == today {
			stats.TodayBookings++
		}
	}

	stats.ActiveCompanions = len(companions)
	stats.RevenueFormatted = amounts.Format(stats.Revenue)

	return stats
}
