package models

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized strips the password before a user record leaves the API.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
