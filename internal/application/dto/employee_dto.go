package dto

import "time"

// AddEmployeeRequest entrada para vincular un empleado a un negocio (solo dueño).
type AddEmployeeRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // manager | employee; default employee
}

// EmployeeResponse membresía de un usuario en un negocio.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeListResponse empleados de un negocio.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
}
