package model

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleUser      Role = "USER"
)

// IsStaff reports whether the role may run desk workflows
// (copy assignment, borrow conversion, return approval).
func (r Role) IsStaff() bool { return r == RoleAdmin || r == RoleLibrarian }

type User struct {
	ID        string    `json:"id"`
	CCCD      string    `json:"cccd"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}
