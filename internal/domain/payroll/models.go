package payroll

import "errors"

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

var ErrNotFound = errors.New("payroll record not found")

// Record is a month's payroll line for an employee. NetSalary arrives from the
// payroll processor; it is displayed as supplied, never recomputed from the
// component amounts.
type Record struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	BaseSalary   float64 `json:"baseSalary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	Overtime     float64 `json:"overtime"`
	NetSalary    float64 `json:"netSalary"`
	Status       string  `json:"status"`
}

type Summary struct {
	TotalNet     float64 `json:"totalNet"`
	PaidCount    int     `json:"paidCount"`
	PendingCount int     `json:"pendingCount"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessed, StatusPaid:
		return true
	}
	return false
}
