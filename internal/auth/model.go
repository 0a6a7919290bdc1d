package auth

// User is the domain entity. Passwords are stored bcrypt-hashed, never plain.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Roles. Registration always yields RoleUser; admins are provisioned out of
// band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
