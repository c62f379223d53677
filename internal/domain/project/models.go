package project

import (
	"errors"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

var ErrNotFound = errors.New("project not found")

// Project tracks an inclusive date range: EndDate is always
// StartDate + DurationDays - 1.
type Project struct {
	ID                string    `json:"project_id"`
	Name              string    `json:"project_name"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	DurationDays      int       `json:"duration_days"`
	AssignedEmployees []string  `json:"assigned_employees"`
	Status            string    `json:"status"`
	CreatedBy         string    `json:"created_by"`
	Description       string    `json:"description,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusUpcoming, StatusActive, StatusCompleted:
		return true
	}
	return false
}

var statusLabels = map[string]string{
	StatusUpcoming:  "Upcoming",
	StatusActive:    "Active",
	StatusCompleted: "Completed",
}

func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

var statusTones = map[string]string{
	StatusUpcoming:  "gray",
	StatusActive:    "primary",
	StatusCompleted: "success",
}

func StatusTone(status string) string {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return "gray"
}
