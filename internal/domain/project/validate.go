package project

import (
	"strings"
	"time"
)

// Draft is the user-submitted form for creating or editing a project. The end
// date is never accepted from the caller; it is derived from StartDate and
// DurationDays.
type Draft struct {
	Name              string    `json:"project_name"`
	StartDate         time.Time `json:"start_date"`
	DurationDays      int       `json:"duration_days"`
	AssignedEmployees []string  `json:"assigned_employees"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
}

// ValidateDraft accumulates every field problem into a field -> message map.
// An empty map means the draft is acceptable.
func ValidateDraft(draft Draft) map[string]string {
	issues := map[string]string{}

	if strings.TrimSpace(draft.Name) == "" {
		issues["project_name"] = "Project name is required"
	}
	if draft.StartDate.IsZero() {
		issues["start_date"] = "Start date is required"
	}
	if draft.DurationDays <= 0 {
		issues["duration_days"] = "Time period must be greater than 0"
	}
	if len(draft.AssignedEmployees) == 0 {
		issues["employees"] = "At least one employee must be assigned"
	}
	if draft.Status != "" && !ValidStatus(draft.Status) {
		issues["status"] = "Status must be upcoming, active or completed"
	}

	return issues
}
