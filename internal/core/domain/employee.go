package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the access level derived from an employee's designation.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeExists = errors.New("employee already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// DesignationToRole maps the free-form designation field onto a Role.
// Unknown designations always resolve to RoleUser.
func DesignationToRole(designation string) Role {
	switch strings.ToLower(strings.TrimSpace(designation)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleUser
	}
}

// Employee is a registered account holding credentials.
type Employee struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	FullName     string    `json:"fullName" bson:"full_name"`
	Email        string    `json:"email" bson:"email"`
	MobileNumber string    `json:"mobileNumber,omitempty" bson:"mobile_number,omitempty"`
	Designation  string    `json:"designation" bson:"designation"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// Role returns the employee's derived role.
func (e *Employee) Role() Role {
	return DesignationToRole(e.Designation)
}

// Principal is the authenticated identity attached to a request by the
// auth middleware. Downstream code never sees the raw token or password hash.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PrincipalOf builds the request principal for an employee.
func PrincipalOf(e *Employee) Principal {
	return Principal{
		ID:    e.ID,
		Name:  e.FullName,
		Email: e.Email,
		Role:  e.Role(),
	}
}
