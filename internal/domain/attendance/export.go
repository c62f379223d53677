package attendance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"hrms/internal/platform/timezone"
)

// RenderSheetXLSX writes attendance records to a spreadsheet, one row per day.
// Dates and clock punches are rendered in the supplied zone.
func RenderSheetXLSX(records []Record, zone string) ([]byte, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"Employee ID", "Date", "Clock In", "Clock Out", "Status", "Hours Worked", "Overtime"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, record := range records {
		date, err := timezone.FormatDate(record.Date, zone)
		if err != nil {
			return nil, err
		}
		values := []any{
			record.EmployeeID,
			date,
			formatPunch(record.ClockIn, zone),
			formatPunch(record.ClockOut, zone),
			record.Status,
			formatHours(record.HoursWorked),
			formatHours(record.Overtime),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	var buff bytes.Buffer
	if err := file.Write(&buff); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

func formatPunch(t *time.Time, zone string) string {
	if t == nil {
		return "-"
	}
	formatted, err := timezone.FormatTime(*t, zone)
	if err != nil {
		return "-"
	}
	return formatted
}

func formatHours(v *float64) any {
	if v == nil {
		return "-"
	}
	return *v
}
