package leave

import (
	"errors"
	"time"
)

const (
	TypePL  = "PL"
	TypeCL  = "CL"
	TypeEL  = "EL"
	TypeACL = "ACL"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrUnknownType         = errors.New("unknown leave type")
	ErrNotFound            = errors.New("leave request not found")
	ErrNotPending          = errors.New("leave request is not pending")
)

type Balance struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	Total      int    `json:"total"`
	Used       int    `json:"used"`
	Available  int    `json:"available"`
}

type Request struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Type         string    `json:"type"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Days         int       `json:"days"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	AppliedDate  time.Time `json:"appliedDate"`
}

func ValidType(leaveType string) bool {
	switch leaveType {
	case TypePL, TypeCL, TypeEL, TypeACL:
		return true
	}
	return false
}

var statusTones = map[string]string{
	StatusPending:  "warning",
	StatusApproved: "success",
	StatusRejected: "danger",
}

func StatusTone(status string) string {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return "gray"
}
