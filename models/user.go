package models

const (
	RoleAdmin     = "admin"
	RoleSales     = "sales"
	RoleAnonymous = "anonymous"
)

// User is the current operator. The role is self-declared at login; there are
// no credentials in this system.
type User struct {
	Name string `bson:"name" json:"name"`
	Role string `bson:"role" json:"role"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSales
}
