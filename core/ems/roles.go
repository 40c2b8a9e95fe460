package ems

var (
	RoleOwner     = "Owner"
	RoleAdmin     = "Admin"
	RoleDeveloper = "Developer"
	RoleTeacher   = "Teacher"
	RoleStaff     = "Staff"
	RoleGuardian  = "Guardian"
	RoleStudent   = "Student"

	AllRoles = []string{
		RoleOwner, RoleAdmin, RoleDeveloper, RoleTeacher,
		RoleStaff, RoleGuardian, RoleStudent,
	}

	// AdminRoles may enter the admin area of the portal.
	AdminRoles = []string{RoleOwner, RoleAdmin, RoleDeveloper, RoleTeacher}
)

// IsAdminRole reports whether role grants access to admin routes.
func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}
