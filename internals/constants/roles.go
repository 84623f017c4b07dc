package constants

import "fmt"

// Two-tier admin model: full_admin may do everything announcement_admin may,
// plus every financial mutation. Unauthenticated callers read, never write.
const (
	RoleFullAdmin         = "full_admin"
	RoleAnnouncementAdmin = "announcement_admin"
)

// Monthly dues owed per member, in currency units. Stored explicitly on each
// payment row so an admin can override it.
const DefaultMonthlyDues = 500.0

const (
	ErrOnlyAdminsCanAccess    = "Only an admin may access %s."
	ErrOnlyFullAdminCanAccess = "Only the full admin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFullAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyFullAdminCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleFullAdmin,
		RoleAnnouncementAdmin,
	}

	AdminRoles = []string{
		RoleFullAdmin,
		RoleAnnouncementAdmin,
	}

	FullAdminOnly = []string{
		RoleFullAdmin,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanManageAnnouncements covers announcements and the support directory.
func CanManageAnnouncements(role string) bool {
	return role == RoleFullAdmin || role == RoleAnnouncementAdmin
}

// CanMutateFinance covers members, payments, contributions, donations,
// expenses, balances and report export.
func CanMutateFinance(role string) bool {
	return role == RoleFullAdmin
}
