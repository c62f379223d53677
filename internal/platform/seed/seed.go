package seed

import (
	"strconv"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/identity"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/project"
)

// Dataset is the sample company every fresh deployment starts with. The same
// data backs the in-memory stores and the database seeder so both modes serve
// identical fixtures.
type Dataset struct {
	Identities    []identity.Identity
	Passwords     map[string]string // user id -> bcrypt hash
	Balances      []leave.Balance
	LeaveRequests []leave.Request
	Attendance    []attendance.Record
	Payroll       []payroll.Record
	Projects      []project.Project
}

const companyZone = "Asia/Kolkata"

// Build assembles the dataset. Every account authenticates with "password".
// Attendance is pinned to the current day so the dashboard counters are live.
func Build(companyTimezone string) (Dataset, error) {
	if companyTimezone == "" {
		companyTimezone = companyZone
	}

	hash, err := identity.HashPassword("password")
	if err != nil {
		return Dataset{}, err
	}

	identities := []identity.Identity{
		{ID: "1", EmployeeID: "admin001", Name: "Admin User", Email: "admin@company.com", Role: identity.RoleAdmin, Department: "HR", Designation: "HR Administrator", Timezone: companyTimezone, CompanyTimezone: companyTimezone},
		{ID: "2", EmployeeID: "manager001", Name: "Manager User", Email: "manager@company.com", Role: identity.RoleManager, Department: "Engineering", Designation: "Engineering Manager", Timezone: companyTimezone, CompanyTimezone: companyTimezone},
		{ID: "3", EmployeeID: "emp001", Name: "John Doe", Email: "john@company.com", Role: identity.RoleEmployeeInternal, Department: "Engineering", Designation: "Software Engineer", Timezone: companyTimezone, CompanyTimezone: companyTimezone},
		{ID: "4", EmployeeID: "emp002", Name: "Jane Smith", Email: "jane@company.com", Role: identity.RoleEmployeeRemote, Department: "Engineering", Designation: "Senior Developer", Timezone: "America/New_York", CompanyTimezone: companyTimezone},
		{ID: "5", EmployeeID: "emp003", Name: "Bob Johnson", Email: "bob@company.com", Role: identity.RoleEmployeeInternal, Department: "Sales", Designation: "Sales Executive", Timezone: companyTimezone, CompanyTimezone: companyTimezone},
		{ID: "6", EmployeeID: "emp004", Name: "Alice Williams", Email: "alice@company.com", Role: identity.RoleEmployeeRemote, Department: "Marketing", Designation: "Marketing Specialist", Timezone: "Europe/London", CompanyTimezone: companyTimezone},
	}

	passwords := make(map[string]string, len(identities))
	for _, entry := range identities {
		passwords[entry.ID] = hash
	}

	var balances []leave.Balance
	for _, entry := range identities {
		balances = append(balances,
			leave.Balance{EmployeeID: entry.ID, Type: leave.TypePL, Total: 12, Used: 3, Available: 9},
			leave.Balance{EmployeeID: entry.ID, Type: leave.TypeCL, Total: 6, Used: 1, Available: 5},
			leave.Balance{EmployeeID: entry.ID, Type: leave.TypeEL, Total: 5, Used: 0, Available: 5},
			leave.Balance{EmployeeID: entry.ID, Type: leave.TypeACL, Total: 0, Used: 0, Available: 0},
		)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	requests := []leave.Request{
		{
			ID: "lr1", EmployeeID: "3", EmployeeName: "John Doe", Type: leave.TypePL,
			StartDate: today.AddDate(0, 0, 7), EndDate: today.AddDate(0, 0, 9), Days: 3,
			Reason: "Family function", Status: leave.StatusPending, AppliedDate: today.AddDate(0, 0, -1),
		},
		{
			ID: "lr2", EmployeeID: "4", EmployeeName: "Jane Smith", Type: leave.TypeCL,
			StartDate: today.AddDate(0, 0, -14), EndDate: today.AddDate(0, 0, -14), Days: 1,
			Reason: "Medical appointment", Status: leave.StatusApproved, AppliedDate: today.AddDate(0, 0, -16),
		},
		{
			ID: "lr3", EmployeeID: "5", EmployeeName: "Bob Johnson", Type: leave.TypeEL,
			StartDate: today.AddDate(0, 0, 2), EndDate: today.AddDate(0, 0, 3), Days: 2,
			Reason: "Personal emergency", Status: leave.StatusPending, AppliedDate: today,
		},
	}

	attendanceRecords := buildAttendance(today, companyTimezone)

	payrollRecords := []payroll.Record{
		{ID: "pay1", EmployeeID: "2", EmployeeName: "Manager User", Month: "August", Year: 2026, BaseSalary: 95000, Allowances: 9500, Deductions: 7200, Overtime: 0, NetSalary: 97300, Status: payroll.StatusPaid},
		{ID: "pay2", EmployeeID: "3", EmployeeName: "John Doe", Month: "August", Year: 2026, BaseSalary: 65000, Allowances: 6500, Deductions: 4800, Overtime: 1200, NetSalary: 67900, Status: payroll.StatusPaid},
		{ID: "pay3", EmployeeID: "4", EmployeeName: "Jane Smith", Month: "August", Year: 2026, BaseSalary: 78000, Allowances: 7800, Deductions: 5900, Overtime: 0, NetSalary: 79900, Status: payroll.StatusProcessed},
		{ID: "pay4", EmployeeID: "5", EmployeeName: "Bob Johnson", Month: "August", Year: 2026, BaseSalary: 55000, Allowances: 5500, Deductions: 4100, Overtime: 800, NetSalary: 57200, Status: payroll.StatusPending},
		{ID: "pay5", EmployeeID: "6", EmployeeName: "Alice Williams", Month: "August", Year: 2026, BaseSalary: 58000, Allowances: 5800, Deductions: 4300, Overtime: 0, NetSalary: 59500, Status: payroll.StatusPending},
	}

	projects := []project.Project{
		{
			ID: "proj001", Name: "Website Redesign",
			StartDate: today.AddDate(0, 0, -10), EndDate: today.AddDate(0, 0, 19), DurationDays: 30,
			AssignedEmployees: []string{"3", "4"}, Status: project.StatusActive, CreatedBy: "2",
			Description: "Complete redesign of the company website",
		},
		{
			ID: "proj002", Name: "Mobile App Development",
			StartDate: today.AddDate(0, 0, 14), EndDate: today.AddDate(0, 0, 63), DurationDays: 50,
			AssignedEmployees: []string{"4"}, Status: project.StatusUpcoming, CreatedBy: "2",
			Description: "Customer-facing mobile application",
		},
		{
			ID: "proj003", Name: "Q4 Marketing Campaign",
			StartDate: today.AddDate(0, 0, -20), EndDate: today.AddDate(0, 0, -6), DurationDays: 15,
			AssignedEmployees: []string{"5", "6"}, Status: project.StatusCompleted, CreatedBy: "1",
			Description: "Festive season campaign across channels",
		},
	}

	return Dataset{
		Identities:    identities,
		Passwords:     passwords,
		Balances:      balances,
		LeaveRequests: requests,
		Attendance:    attendanceRecords,
		Payroll:       payrollRecords,
		Projects:      projects,
	}, nil
}

func buildAttendance(today time.Time, zone string) []attendance.Record {
	clockIn := today.Add(9 * time.Hour)
	clockOut := today.Add(-24 * time.Hour).Add(18 * time.Hour)

	hours := func(v float64) *float64 { return &v }
	at := func(t time.Time) *time.Time { return &t }

	var out []attendance.Record
	nextID := 1
	add := func(record attendance.Record) {
		record.ID = "att" + strconv.Itoa(nextID)
		nextID++
		out = append(out, record)
	}

	// Today: everyone but Bob is in; Bob is absent and Jane works from home.
	add(attendance.Record{EmployeeID: "1", Date: today, ClockIn: at(clockIn), Status: attendance.StatusPresent, Timezone: zone})
	add(attendance.Record{EmployeeID: "2", Date: today, ClockIn: at(clockIn.Add(-15 * time.Minute)), Status: attendance.StatusPresent, Timezone: zone})
	add(attendance.Record{EmployeeID: "3", Date: today, ClockIn: at(clockIn.Add(10 * time.Minute)), Status: attendance.StatusPresent, Timezone: zone})
	add(attendance.Record{EmployeeID: "4", Date: today, ClockIn: at(clockIn), Status: attendance.StatusWFH, Timezone: "America/New_York"})
	add(attendance.Record{EmployeeID: "5", Date: today, Status: attendance.StatusAbsent, Timezone: zone})
	add(attendance.Record{EmployeeID: "6", Date: today, Status: attendance.StatusLeave, Timezone: "Europe/London"})

	// Yesterday: a full closed-out day with hours and some overtime.
	yesterday := today.AddDate(0, 0, -1)
	add(attendance.Record{EmployeeID: "3", Date: yesterday, ClockIn: at(yesterday.Add(9 * time.Hour)), ClockOut: at(clockOut), Status: attendance.StatusPresent, HoursWorked: hours(9), Overtime: hours(1), Timezone: zone})
	add(attendance.Record{EmployeeID: "4", Date: yesterday, ClockIn: at(yesterday.Add(9 * time.Hour)), ClockOut: at(yesterday.Add(17 * time.Hour)), Status: attendance.StatusWFH, HoursWorked: hours(8), Timezone: "America/New_York"})
	add(attendance.Record{EmployeeID: "5", Date: yesterday, ClockIn: at(yesterday.Add(9*time.Hour + 30*time.Minute)), ClockOut: at(yesterday.Add(18 * time.Hour)), Status: attendance.StatusPresent, HoursWorked: hours(8.5), Overtime: hours(0.5), Timezone: zone})

	return out
}
