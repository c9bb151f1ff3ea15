package bookings

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

// timestampLayouts форматы startTime/endTime, которые встречаются в CMS
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// AmountFormatter форматирует цену для отображения
type AmountFormatter interface {
	Format(value float64) string
}

// CurrencyFormatter символ валюты + число с разделителями разрядов локали ("R$ 1.500")
type CurrencyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewCurrencyFormatter создает форматтер; неизвестная локаль заменяется на pt-BR
func NewCurrencyFormatter(symbol, locale string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &CurrencyFormatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

func (f *CurrencyFormatter) Format(value float64) string {
	return f.symbol + " " + f.printer.Sprintf("%v", number.Decimal(value))
}

// Normalize переводит сырое бронирование CMS в запись для дашборда.
// Чистая функция: отсутствующие поля заменяются значениями по умолчанию.
func Normalize(raw cms.Booking, amounts AmountFormatter) domain.DisplayBooking {
	date, clock := splitTimestamp(raw.StartTime)

	b := domain.DisplayBooking{
		ID:            raw.ID,
		DocumentID:    raw.DocumentID,
		ClientName:    clientName(raw),
		CompanionName: domain.DefaultCompanionName,
		Date:          date,
		Time:          clock,
		Duration:      duration(raw.StartTime, raw.EndTime),
		Amount:        domain.Placeholder,
		Status:        domain.NormalizeStatus(raw.CurrentStatus),
		ClientPhone:   orPlaceholder(raw.CustomerPhone),
		CustomerEmail: orPlaceholder(raw.CustomerEmail),
		BookingRef:    orPlaceholder(raw.BookingID),
	}

	if raw.Companion != nil {
		if raw.Companion.Name != "" {
			b.CompanionName = raw.Companion.Name
		}
		if price := raw.Companion.Price.Ptr(); price != nil {
			b.AmountValue = price
			b.Amount = amounts.Format(*price)
		}
	}

	return b
}

// NormalizeAll нормализует список целиком
func NormalizeAll(raw []cms.Booking, amounts AmountFormatter) []domain.DisplayBooking {
	result := make([]domain.DisplayBooking, 0, len(raw))
	for _, r := range raw {
		result = append(result, Normalize(r, amounts))
	}
	return result
}

// clientName первое непустое из телефона, имени, email; иначе "Cliente"
func clientName(raw cms.Booking) string {
	for _, candidate := range []string{raw.CustomerPhone, raw.CustomerName, raw.CustomerEmail} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return domain.DefaultClientName
}

// splitTimestamp делит "2024-03-01T14:30:00" на дату и время HH:MM
func splitTimestamp(ts string) (string, string) {
	if ts == "" {
		return domain.Placeholder, domain.Placeholder
	}

	date, clock, found := strings.Cut(ts, "T")
	if date == "" {
		date = domain.Placeholder
	}
	if !found || clock == "" {
		return date, domain.Placeholder
	}
	if len(clock) > 5 {
		clock = clock[:5]
	}

	return date, clock
}

// duration длительность в целых минутах ("45min"), либо "-"
func duration(start, end string) string {
	if start == "" || end == "" {
		return domain.Placeholder
	}

	startAt, ok := parseTimestamp(start)
	if !ok {
		return domain.Placeholder
	}
	endAt, ok := parseTimestamp(end)
	if !ok {
		return domain.Placeholder
	}

	minutes := int64(math.Round(endAt.Sub(startAt).Minutes()))
	if minutes <= 0 {
		return domain.Placeholder
	}

	return fmt.Sprintf("%dmin", minutes)
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func orPlaceholder(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}
