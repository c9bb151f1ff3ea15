package bookings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

func strPtr(s string) *string { return &s }

func brl() *CurrencyFormatter { return NewCurrencyFormatter("R$", "pt-BR") }

func TestNormalize_FullRecord(t *testing.T) {
	raw := cms.Booking{
		ID:            1,
		DocumentID:    "doc1",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		StartTime:     "2024-03-01T14:30:00",
		EndTime:       "2024-03-01T15:15:00",
		Companion:     &cms.Companion{Name: "Maria", Price: cms.Number{Value: 1500, Valid: true}},
		CurrentStatus: strPtr("APPROVED"),
		BookingID:     "BK-1",
	}

	b := Normalize(raw, brl())

	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, "doc1", b.DocumentID)
	assert.Equal(t, "Ana", b.ClientName)
	assert.Equal(t, "Maria", b.CompanionName)
	assert.Equal(t, "2024-03-01", b.Date)
	assert.Equal(t, "14:30", b.Time)
	assert.Equal(t, "45min", b.Duration)
	assert.Equal(t, "R$ 1.500", b.Amount)
	require.NotNil(t, b.AmountValue)
	assert.Equal(t, 1500.0, *b.AmountValue)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, "-", b.ClientPhone)
	assert.Equal(t, "ana@example.com", b.CustomerEmail)
	assert.Equal(t, "BK-1", b.BookingRef)
}

func TestNormalize_EmptyRecordUsesDefaults(t *testing.T) {
	b := Normalize(cms.Booking{ID: 9}, brl())

	assert.Equal(t, "Cliente", b.ClientName)
	assert.Equal(t, "Companion", b.CompanionName)
	assert.Equal(t, "-", b.Date)
	assert.Equal(t, "-", b.Time)
	assert.Equal(t, "-", b.Duration)
	assert.Equal(t, "-", b.Amount)
	assert.Nil(t, b.AmountValue)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "-", b.BookingRef)
}

func TestNormalize_ClientNamePriority(t *testing.T) {
	tests := []struct {
		name string
		raw  cms.Booking
		want string
	}{
		{"phone first", cms.Booking{CustomerPhone: "+48 600", CustomerName: "Ana", CustomerEmail: "a@b.c"}, "+48 600"},
		{"blank phone skipped", cms.Booking{CustomerPhone: "   ", CustomerName: "Ana"}, "Ana"},
		{"email last", cms.Booking{CustomerName: " ", CustomerEmail: "a@b.c"}, "a@b.c"},
		{"fallback", cms.Booking{}, "Cliente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, brl()).ClientName)
		})
	}
}

func TestNormalize_Duration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"whole minutes", "2024-03-01T14:30:00", "2024-03-01T15:15:00", "45min"},
		{"zone aware", "2024-03-01T14:30:00.000Z", "2024-03-01T16:00:00.000Z", "90min"},
		{"rounded", "2024-03-01T14:30:00", "2024-03-01T14:30:40", "1min"},
		{"negative", "2024-03-01T15:00:00", "2024-03-01T14:00:00", "-"},
		{"zero", "2024-03-01T15:00:00", "2024-03-01T15:00:00", "-"},
		{"missing end", "2024-03-01T15:00:00", "", "-"},
		{"unparseable", "tomorrow", "2024-03-01T15:00:00", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Normalize(cms.Booking{StartTime: tt.start, EndTime: tt.end}, brl())
			assert.Equal(t, tt.want, b.Duration)
		})
	}
}

func TestNormalize_StartWithoutTime(t *testing.T) {
	b := Normalize(cms.Booking{StartTime: "2024-03-01"}, brl())
	assert.Equal(t, "2024-03-01", b.Date)
	assert.Equal(t, "-", b.Time)
}

func TestNormalize_StatusFromWire(t *testing.T) {
	var raw []cms.Booking
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"currentStatus":null},
		{"id":2,"currentStatus":"Cancelled"},
		{"id":3,"currentStatus":"weird_value"},
		{"id":4,"currentStatus":"PENDING"}
	]`), &raw))

	list := NormalizeAll(raw, brl())
	require.Len(t, list, 4)
	assert.Equal(t, domain.StatusPending, list[0].Status)
	assert.Equal(t, domain.StatusCancelled, list[1].Status)
	assert.Equal(t, domain.StatusPending, list[2].Status)
	assert.Equal(t, domain.StatusPending, list[3].Status)

	assert.Nil(t, raw[0].CurrentStatus)
}

func TestNormalize_CompanionBlankNameAndZeroPrice(t *testing.T) {
	b := Normalize(cms.Booking{
		ID:        1,
		Companion: &cms.Companion{Name: "", Price: cms.Number{Value: 0, Valid: true}},
	}, brl())

	assert.Equal(t, domain.DefaultCompanionName, b.CompanionName)
	assert.Equal(t, "R$ 0", b.Amount)
	require.NotNil(t, b.AmountValue)
	assert.Equal(t, 0.0, *b.AmountValue)
}

func TestCurrencyFormatter(t *testing.T) {
	assert.Equal(t, "R$ 1.500", brl().Format(1500))
	assert.Equal(t, "R$ 250", brl().Format(250))
	assert.Equal(t, "R$ 1.234.567", brl().Format(1234567))
	assert.Equal(t, "$ 1,500", NewCurrencyFormatter("$", "en-US").Format(1500))
}
