package navigation

import "hrms/internal/domain/identity"

type Entry struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Roles []string `json:"-"`
}

// entries is the declared menu. Order here is display order.
var entries = []Entry{
	{Name: "Dashboard", Path: "/dashboard", Roles: allRoles},
	{Name: "Attendance", Path: "/attendance", Roles: allRoles},
	{Name: "Leave", Path: "/leave", Roles: allRoles},
	{Name: "Projects", Path: "/projects", Roles: allRoles},
	{Name: "Payroll", Path: "/payroll", Roles: []string{identity.RoleAdmin}},
	{Name: "Employees", Path: "/employees", Roles: []string{identity.RoleAdmin, identity.RoleManager}},
	{Name: "Profile", Path: "/profile", Roles: allRoles},
	{Name: "Settings", Path: "/settings", Roles: allRoles},
}

var allRoles = []string{
	identity.RoleAdmin,
	identity.RoleManager,
	identity.RoleEmployeeInternal,
	identity.RoleEmployeeRemote,
}

// VisibleTo returns the entries whose allowed-role set contains role,
// preserving declaration order.
func VisibleTo(role string) []Entry {
	var out []Entry
	for _, entry := range entries {
		for _, allowed := range entry.Roles {
			if allowed == role {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}
