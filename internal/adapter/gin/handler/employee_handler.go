package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-agent-service/internal/usecase/employee"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	uc  employee.Usecase
	log *zap.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler instance.
func NewEmployeeHandler(uc employee.Usecase, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// CreateEmployeeRequest represents the HTTP request body for creating an employee.
type CreateEmployeeRequest struct {
	Name       string    `json:"name" binding:"required,min=3,max=100"`
	Email      string    `json:"email" binding:"required,email"`
	Password   string    `json:"password" binding:"required,min=8,max=72"`
	Role       string    `json:"role" binding:"required,oneof=USER MANAGER ADMIN"`
	Department string    `json:"department" binding:"omitempty,max=100"`
	Title      string    `json:"title" binding:"omitempty,max=100"`
	ManagerID  int64     `json:"manager_id" binding:"omitempty,min=1"`
	HiredAt    time.Time `json:"hired_at"`
}

// UpdateEmployeeRequest represents the HTTP request body for updating an employee.
type UpdateEmployeeRequest struct {
	Name       string `json:"name" binding:"omitempty,min=3,max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
	Password   string `json:"password" binding:"omitempty,min=8,max=72"`
	Role       string `json:"role" binding:"omitempty,oneof=USER MANAGER ADMIN"`
	Department string `json:"department" binding:"omitempty,max=100"`
	Title      string `json:"title" binding:"omitempty,max=100"`
	ManagerID  int64  `json:"manager_id" binding:"omitempty,min=1"`
}

// EmployeeResponse represents the HTTP response for employee data.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	Title      string    `json:"title,omitempty"`
	ManagerID  int64     `json:"manager_id,omitempty"`
	HiredAt    time.Time `json:"hired_at"`
}

// ListEmployeesResponse represents the HTTP response for listing employees.
type ListEmployeesResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination *Pagination        `json:"pagination,omitempty"`
}

// CreateEmployee handles POST /v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create employee request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateEmployee(c.Request.Context(), employee.CreateEmployeeRequest{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Title:      req.Title,
		ManagerID:  req.ManagerID,
		HiredAt:    req.HiredAt,
	})
	if err != nil {
		h.log.Error("CreateEmployee failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// GetEmployee handles GET /v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetEmployee(c.Request.Context(), employee.GetEmployeeRequest{ID: id})
	if err != nil {
		h.log.Warn("GetEmployee failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, EmployeeResponse{
		ID:         resp.ID,
		Name:       resp.Name,
		Email:      resp.Email,
		Role:       resp.Role,
		Department: resp.Department,
		Title:      resp.Title,
		ManagerID:  resp.ManagerID,
		HiredAt:    resp.HiredAt,
	})
}

// UpdateEmployee handles PUT /v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update employee request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateEmployee(c.Request.Context(), employee.UpdateEmployeeRequest{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Title:      req.Title,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		h.log.Error("UpdateEmployee failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// DeleteEmployee handles DELETE /v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteEmployee(c.Request.Context(), employee.DeleteEmployeeRequest{ID: id})
	if err != nil {
		h.log.Error("DeleteEmployee failed", zap.Int64("id", id), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// ListEmployees handles GET /v1/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	resp, err := h.uc.ListEmployees(c.Request.Context(), employee.ListEmployeesRequest{
		Query: c.Query("q"),
		Page:  queryInt64(c, "page", 1),
		Limit: queryInt64(c, "limit", 10),
	})
	if err != nil {
		h.log.Error("ListEmployees failed", zap.Error(err))
		handleError(c, err)
		return
	}

	out := ListEmployeesResponse{Employees: make([]EmployeeResponse, 0, len(resp.Employees))}
	for _, e := range resp.Employees {
		out.Employees = append(out.Employees, EmployeeResponse{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Role:       e.Role,
			Department: e.Department,
			Title:      e.Title,
			ManagerID:  e.ManagerID,
			HiredAt:    e.HiredAt,
		})
	}
	if resp.Pagination != nil {
		out.Pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}

	c.JSON(http.StatusOK, out)
}
