package identity

import "errors"

const (
	RoleAdmin            = "admin"
	RoleManager          = "manager"
	RoleEmployeeInternal = "employee_internal"
	RoleEmployeeRemote   = "employee_remote"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("identity not found")
)

// Identity is a directory entry plus the attributes a signed-in session needs.
type Identity struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Department      string `json:"department,omitempty"`
	Designation     string `json:"designation,omitempty"`
	Timezone        string `json:"timezone"`
	CompanyTimezone string `json:"companyTimezone"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployeeInternal, RoleEmployeeRemote:
		return true
	}
	return false
}

// IsManagerial reports whether the role carries manager-level access.
func IsManagerial(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

var roleLabels = map[string]string{
	RoleAdmin:            "Admin / HR",
	RoleManager:          "Manager",
	RoleEmployeeInternal: "Employee (Internal)",
	RoleEmployeeRemote:   "Employee (Remote)",
}

// FormatRole returns the display label for a role, or the raw value when unknown.
func FormatRole(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

var roleBadgeTones = map[string]string{
	RoleAdmin:            "purple",
	RoleManager:          "blue",
	RoleEmployeeInternal: "green",
	RoleEmployeeRemote:   "orange",
}

func RoleBadgeTone(role string) string {
	if tone, ok := roleBadgeTones[role]; ok {
		return tone
	}
	return "gray"
}
