package domain

import "strings"

// Role represents user role in the system
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Roles lists every role seeded at startup
var Roles = []Role{RoleAdmin, RoleUser}

// ParseRole resolves a requested role name. Anything other than Admin falls back to User.
func ParseRole(name string) Role {
	if strings.EqualFold(strings.TrimSpace(name), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// BorrowingStatus represents the state of a loan
type BorrowingStatus string

const (
	BorrowingIssued   BorrowingStatus = "ISSUED"
	BorrowingReturned BorrowingStatus = "RETURNED"
)
