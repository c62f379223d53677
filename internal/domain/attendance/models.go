package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusWFH     = "wfh"
	StatusHoliday = "holiday"
)

// Record is one day of attendance. HoursWorked and Overtime are supplied by
// the upstream attendance source, not derived from the clock punches.
type Record struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Date        time.Time  `json:"date"`
	ClockIn     *time.Time `json:"clockIn,omitempty"`
	ClockOut    *time.Time `json:"clockOut,omitempty"`
	Status      string     `json:"status"`
	HoursWorked *float64   `json:"hoursWorked,omitempty"`
	Overtime    *float64   `json:"overtime,omitempty"`
	Timezone    string     `json:"timezone"`
}

type Stats struct {
	TotalEmployees int     `json:"totalEmployees"`
	PresentToday   int     `json:"presentToday"`
	AbsentToday    int     `json:"absentToday"`
	OnLeaveToday   int     `json:"onLeaveToday"`
	OvertimeHours  float64 `json:"overtimeHours"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLeave, StatusWFH, StatusHoliday:
		return true
	}
	return false
}

var statusTones = map[string]string{
	StatusPresent: "success",
	StatusAbsent:  "danger",
	StatusLeave:   "warning",
	StatusWFH:     "primary",
	StatusHoliday: "gray",
}

// StatusTone maps a status to its display tone; unknown statuses render gray.
func StatusTone(status string) string {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return "gray"
}
