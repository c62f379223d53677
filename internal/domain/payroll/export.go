package payroll

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderRegisterXLSX writes the payroll register to a spreadsheet, one row
// per record.
func RenderRegisterXLSX(records []Record) ([]byte, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"Employee ID", "Employee Name", "Month", "Year", "Base Salary", "Allowances", "Deductions", "Overtime", "Net Salary", "Status"}
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
		values := []any{
			record.EmployeeID,
			record.EmployeeName,
			record.Month,
			record.Year,
			record.BaseSalary,
			record.Allowances,
			record.Deductions,
			record.Overtime,
			record.NetSalary,
			record.Status,
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
