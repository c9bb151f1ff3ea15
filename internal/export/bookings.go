package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// SheetName лист с бронированиями
const SheetName = "Bookings"

var headers = []string{
	"ID", "Document ID", "Booking", "Client", "Companion", "Date", "Time",
	"Duration", "Amount", "Status", "Phone", "Email",
}

var columnWidths = map[string]float64{
	"A": 8, "B": 28, "C": 16, "D": 24, "E": 20, "F": 12,
	"G": 8, "H": 10, "I": 14, "J": 12, "K": 18, "L": 28,
}

// WriteBookings пишет бронирования в XLSX
func WriteBookings(w io.Writer, list []domain.DisplayBooking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	// Заголовки
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("error writing header %s: %w", header, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	// Данные
	for i, b := range list {
		row := i + 2
		values := []interface{}{
			b.ID, b.DocumentID, b.BookingRef, b.ClientName, b.CompanionName, b.Date, b.Time,
			b.Duration, b.Amount, string(b.Status), b.ClientPhone, b.CustomerEmail,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", row, err)
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("error setting width of column %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}

	return nil
}
