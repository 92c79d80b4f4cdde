package constants

// Role yang dikenal sistem (kolom users.role)
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

var AllRoles = []string{RoleAdmin, RoleStudent}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
