package seed

import (
	"context"

	"hrms/internal/platform/db"
)

// Apply inserts the dataset into the database. Every statement is idempotent
// so a restart against an already seeded database is a no-op.
func Apply(ctx context.Context, q db.Querier, data Dataset) error {
	for _, entry := range data.Identities {
		if _, err := q.Exec(ctx, `
      INSERT INTO identities (id, employee_id, name, email, role, department, designation, timezone, company_timezone, password_hash)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
      ON CONFLICT (id) DO NOTHING
    `, entry.ID, entry.EmployeeID, entry.Name, entry.Email, entry.Role, entry.Department, entry.Designation, entry.Timezone, entry.CompanyTimezone, data.Passwords[entry.ID]); err != nil {
			return err
		}
	}

	for _, balance := range data.Balances {
		if _, err := q.Exec(ctx, `
      INSERT INTO leave_balances (employee_id, leave_type, total, used)
      VALUES ($1,$2,$3,$4)
      ON CONFLICT (employee_id, leave_type) DO NOTHING
    `, balance.EmployeeID, balance.Type, balance.Total, balance.Used); err != nil {
			return err
		}
	}

	for _, request := range data.LeaveRequests {
		if _, err := q.Exec(ctx, `
      INSERT INTO leave_requests (id, employee_id, employee_name, leave_type, start_date, end_date, days, reason, status, applied_date)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
      ON CONFLICT (id) DO NOTHING
    `, request.ID, request.EmployeeID, request.EmployeeName, request.Type, request.StartDate, request.EndDate, request.Days, request.Reason, request.Status, request.AppliedDate); err != nil {
			return err
		}
	}

	for _, record := range data.Attendance {
		if _, err := q.Exec(ctx, `
      INSERT INTO attendance_records (id, employee_id, day, clock_in, clock_out, status, hours_worked, overtime, timezone)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
      ON CONFLICT (id) DO NOTHING
    `, record.ID, record.EmployeeID, record.Date, record.ClockIn, record.ClockOut, record.Status, record.HoursWorked, record.Overtime, record.Timezone); err != nil {
			return err
		}
	}

	for _, record := range data.Payroll {
		if _, err := q.Exec(ctx, `
      INSERT INTO payroll_records (id, employee_id, employee_name, month, year, base_salary, allowances, deductions, overtime, net_salary, status)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
      ON CONFLICT (id) DO NOTHING
    `, record.ID, record.EmployeeID, record.EmployeeName, record.Month, record.Year, record.BaseSalary, record.Allowances, record.Deductions, record.Overtime, record.NetSalary, record.Status); err != nil {
			return err
		}
	}

	for _, p := range data.Projects {
		if _, err := q.Exec(ctx, `
      INSERT INTO projects (id, name, start_date, end_date, duration_days, assigned_employees, status, created_by, description)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
      ON CONFLICT (id) DO NOTHING
    `, p.ID, p.Name, p.StartDate, p.EndDate, p.DurationDays, p.AssignedEmployees, p.Status, p.CreatedBy, p.Description); err != nil {
			return err
		}
	}

	return nil
}
