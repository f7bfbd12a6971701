package domain

import "time"

// UserRole distinguishes clients from administrators.
type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"
)

// User is the domain model for authenticated accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserInfo is the joined display subset attached to ticket rows.
type UserInfo struct {
	Name  string
	Email string
	Role  UserRole
}

// Info returns the display subset for this user.
func (u *User) Info() UserInfo {
	return UserInfo{Name: u.Name, Email: u.Email, Role: u.Role}
}
