package employee

import "context"

// Usecase defines the interface for employee management operations.
type Usecase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeRequest) (*CreateEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeRequest) (*UpdateEmployeeResponse, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeRequest) (*DeleteEmployeeResponse, error)
	GetEmployee(ctx context.Context, in GetEmployeeRequest) (*GetEmployeeResponse, error)
	ListEmployees(ctx context.Context, in ListEmployeesRequest) (*ListEmployeesResponse, error)
}
