package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "hr-agent-service/internal/domain/employee"
	pkgerrors "hr-agent-service/pkg/errors"
	"hr-agent-service/pkg/security"
)

// EmployeeRepoPG implements employee data access using PostgreSQL and GORM.
type EmployeeRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEmployeeRepoPG creates a new instance of EmployeeRepoPG.
func NewEmployeeRepoPG(db *gorm.DB, log *zap.Logger) *EmployeeRepoPG {
	return &EmployeeRepoPG{db: db, log: log}
}

// EmployeeSchema represents the database schema for the employees table.
type EmployeeSchema struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;unique"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;size:20"`
	Department   string    `gorm:"size:100"`
	Title        string    `gorm:"size:100"`
	ManagerID    int64     `gorm:"index"`
	HiredAt      time.Time ``
	CreatedAt    time.Time ``
	UpdatedAt    time.Time ``
}

// TableName specifies the table name for the EmployeeSchema model.
func (EmployeeSchema) TableName() string {
	return "employees"
}

func (s *EmployeeSchema) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Role:         domain.Role(s.Role),
		Department:   s.Department,
		Title:        s.Title,
		ManagerID:    s.ManagerID,
		HiredAt:      s.HiredAt,
	}
}

// Create inserts a new employee into the database.
func (r *EmployeeRepoPG) Create(ctx context.Context, e *domain.Employee) (int64, error) {
	if e == nil {
		return 0, errors.New("employee cannot be nil")
	}

	model := EmployeeSchema{
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		Department:   e.Department,
		Title:        e.Title,
		ManagerID:    e.ManagerID,
		HiredAt:      e.HiredAt,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create employee in db", zap.Error(err), zap.String("email", e.Email))
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	r.log.Info("employee created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update updates an existing employee in the database.
func (r *EmployeeRepoPG) Update(ctx context.Context, e *domain.Employee) (int64, error) {
	if e == nil {
		return 0, errors.New("employee cannot be nil")
	}

	updates := map[string]any{
		"name":       e.Name,
		"email":      e.Email,
		"role":       string(e.Role),
		"department": e.Department,
		"title":      e.Title,
		"manager_id": e.ManagerID,
	}
	if e.PasswordHash != "" {
		updates["password_hash"] = e.PasswordHash
	}

	res := r.db.WithContext(ctx).Model(&EmployeeSchema{}).Where("id = ?", e.ID).Updates(updates)
	if res.Error != nil {
		r.log.Error("failed to update employee in db", zap.Error(res.Error), zap.Int64("id", e.ID))
		return 0, fmt.Errorf("failed to update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("employee", fmt.Sprintf("employee not found: id=%d", e.ID))
	}

	r.log.Info("employee updated in db", zap.Int64("id", e.ID))
	return e.ID, nil
}

// Delete removes an employee from the database by ID.
func (r *EmployeeRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid employee id")
	}

	res := r.db.WithContext(ctx).Delete(&EmployeeSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete employee in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("employee", fmt.Sprintf("employee not found: id=%d", id))
	}

	r.log.Info("employee deleted in db", zap.Int64("id", id))
	return id, nil
}

// GetByID retrieves an employee from the database by their unique ID.
func (r *EmployeeRepoPG) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var model EmployeeSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("employee not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("employee", fmt.Sprintf("employee not found: id=%d", id))
		}
		r.log.Error("failed to get employee from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves an employee by email address.
// Returns (nil, nil) when no row matches so callers can distinguish
// "absent" from a query failure.
func (r *EmployeeRepoPG) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var model EmployeeSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("employee not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get employee by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return model.toDomain(), nil
}

// List retrieves employees with pagination and guarded substring search
// over name and email. Returns the matching page and the total match count.
func (r *EmployeeRepoPG) List(ctx context.Context, query string, page, limit int64) ([]domain.Employee, int64, error) {
	validated, err := security.ValidateSearchQuery(query)
	if err != nil {
		r.log.Warn("rejected employee search query", zap.String("query", query), zap.Error(err))
		return nil, 0, fmt.Errorf("invalid search query: %w", err)
	}
	sanitized := security.SanitizeSearchString(validated)

	base := r.db.WithContext(ctx).Model(&EmployeeSchema{})
	if sanitized != "" {
		base = base.Where("name LIKE ? OR email LIKE ?", "%"+sanitized+"%", "%"+sanitized+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count employees", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	var models []EmployeeSchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list employees from db", zap.Error(err), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]domain.Employee, len(models))
	for i := range models {
		employees[i] = *models[i].toDomain()
	}

	return employees, total, nil
}

// ListAll retrieves every employee. Used by payroll and onboarding runs.
func (r *EmployeeRepoPG) ListAll(ctx context.Context) ([]domain.Employee, error) {
	var models []EmployeeSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list all employees from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]domain.Employee, len(models))
	for i := range models {
		employees[i] = *models[i].toDomain()
	}
	return employees, nil
}

// CountByRole returns employee headcount grouped by role.
func (r *EmployeeRepoPG) CountByRole(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Role  string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&EmployeeSchema{}).
		Select("role, count(*) as count").Group("role").Scan(&rows).Error
	if err != nil {
		r.log.Error("failed to count employees by role", zap.Error(err))
		return nil, fmt.Errorf("failed to count employees by role: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Role] = rw.Count
	}
	return counts, nil
}
