package handler

import "github.com/worknest/workforce-api/internal/core/domain"

type registerRequest struct {
	FullName     string `json:"fullName"     validate:"required,max=100"`
	Email        string `json:"email"        validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,max=20"`
	Designation  string `json:"designation"  validate:"omitempty,max=100"`
	Password     string `json:"password"     validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// employeePayload is the public view of an employee: no password hash,
// role derived from the designation.
type employeePayload struct {
	ID           string      `json:"id"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	MobileNumber string      `json:"mobileNumber,omitempty"`
	Designation  string      `json:"designation"`
	Role         domain.Role `json:"role"`
}

type authData struct {
	Employee employeePayload `json:"employee"`
	Token    string          `json:"token"`
}

func toEmployeePayload(e *domain.Employee) employeePayload {
	return employeePayload{
		ID:           e.ID,
		FullName:     e.FullName,
		Email:        e.Email,
		MobileNumber: e.MobileNumber,
		Designation:  e.Designation,
		Role:         e.Role(),
	}
}
