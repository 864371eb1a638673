package employee

import "time"

// CreateEmployeeRequest represents the request payload for creating an employee.
type CreateEmployeeRequest struct {
	Name       string `validate:"required,min=3,max=100"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8,max=72"`
	Role       string `validate:"required,oneof=USER MANAGER ADMIN"`
	Department string `validate:"omitempty,max=100"`
	Title      string `validate:"omitempty,max=100"`
	ManagerID  int64  `validate:"omitempty,min=1"`
	HiredAt    time.Time
}

// CreateEmployeeResponse represents the response payload after creating an employee.
type CreateEmployeeResponse struct {
	ID int64
}

// UpdateEmployeeRequest represents the request payload for updating an employee.
// Zero-valued fields keep the stored value.
type UpdateEmployeeRequest struct {
	ID         int64  `validate:"required,min=1"`
	Name       string `validate:"omitempty,min=3,max=100"`
	Email      string `validate:"omitempty,email"`
	Password   string `validate:"omitempty,min=8,max=72"`
	Role       string `validate:"omitempty,oneof=USER MANAGER ADMIN"`
	Department string `validate:"omitempty,max=100"`
	Title      string `validate:"omitempty,max=100"`
	ManagerID  int64  `validate:"omitempty,min=1"`
}

// UpdateEmployeeResponse represents the response payload after updating an employee.
type UpdateEmployeeResponse struct {
	ID int64
}

// DeleteEmployeeRequest represents the request payload for deleting an employee.
type DeleteEmployeeRequest struct {
	ID int64
}

// DeleteEmployeeResponse represents the response payload after deleting an employee.
type DeleteEmployeeResponse struct {
	ID int64
}

// GetEmployeeRequest represents the request payload for retrieving an employee.
type GetEmployeeRequest struct {
	ID int64
}

// GetEmployeeResponse represents the response payload for employee details.
type GetEmployeeResponse struct {
	ID         int64
	Name       string
	Email      string
	Role       string
	Department string
	Title      string
	ManagerID  int64
	HiredAt    time.Time
}

// ListEmployeesRequest represents the request payload for listing employees.
type ListEmployeesRequest struct {
	Query string
	Page  int64
	Limit int64
}

// ListEmployeesResponse represents the response payload for employee listing.
type ListEmployeesResponse struct {
	Employees  []Employee
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// Employee represents an employee DTO for API responses.
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Role       string
	Department string
	Title      string
	ManagerID  int64
	HiredAt    time.Time
}
