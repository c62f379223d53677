package navigation

import (
	"testing"

	"hrms/internal/domain/identity"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}

func TestVisibleTo(t *testing.T) {
	cases := []struct {
		role string
		want []string
	}{
		{identity.RoleAdmin, []string{"Dashboard", "Attendance", "Leave", "Projects", "Payroll", "Employees", "Profile", "Settings"}},
		{identity.RoleManager, []string{"Dashboard", "Attendance", "Leave", "Projects", "Employees", "Profile", "Settings"}},
		{identity.RoleEmployeeInternal, []string{"Dashboard", "Attendance", "Leave", "Projects", "Profile", "Settings"}},
		{identity.RoleEmployeeRemote, []string{"Dashboard", "Attendance", "Leave", "Projects", "Profile", "Settings"}},
	}

	for _, tc := range cases {
		got := names(VisibleTo(tc.role))
		if len(got) != len(tc.want) {
			t.Fatalf("role %s: expected %d entries, got %v", tc.role, len(tc.want), got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("role %s: expected %v, got %v", tc.role, tc.want, got)
			}
		}
	}
}

func TestUnknownRoleSeesNothing(t *testing.T) {
	if got := VisibleTo("contractor"); len(got) != 0 {
		t.Fatalf("expected no entries for unknown role, got %v", names(got))
	}
}
