package model

// Role classifies what a user account is allowed to do.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleOrganizer Role = "Organizer"
	RoleAdmin     Role = "Admin"
)

// User represents an account in the system. The password is stored and
// compared in plain form; this is a demo application and real credential
// handling is deliberately out of scope.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
