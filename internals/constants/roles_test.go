package constants

import "testing"

func TestRoleHierarchyIsMonotonic(t *testing.T) {
	// Everything the announcement admin may do, the full admin may do too.
	if CanManageAnnouncements(RoleAnnouncementAdmin) && !CanManageAnnouncements(RoleFullAdmin) {
		t.Fatal("full_admin lost an announcement_admin capability")
	}
	if CanMutateFinance(RoleAnnouncementAdmin) {
		t.Fatal("announcement_admin must never mutate finance")
	}
	if !CanMutateFinance(RoleFullAdmin) {
		t.Fatal("full_admin must be able to mutate finance")
	}
}

func TestGuestHasNoCapabilities(t *testing.T) {
	for _, role := range []string{"", "guest", "member"} {
		if CanManageAnnouncements(role) {
			t.Errorf("role %q should not manage announcements", role)
		}
		if CanMutateFinance(role) {
			t.Errorf("role %q should not mutate finance", role)
		}
	}
}

func TestIsKnownRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleFullAdmin, true},
		{RoleAnnouncementAdmin, true},
		{"owner", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsKnownRole(tt.role); got != tt.want {
			t.Errorf("IsKnownRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
