package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

// allowedRoleTransitions is the explicit transition table for role changes.
// The only supported transition is STUDENT -> INSTRUCTOR; ADMIN never changes role.
var allowedRoleTransitions = map[string][]string{
	RoleStudent: {RoleInstructor},
}

// CanTransitionRole reports whether a user role is allowed to change to the target role
func CanTransitionRole(from, to string) bool {
	for _, allowed := range allowedRoleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	FullName string `json:"full_name" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
