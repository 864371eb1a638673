package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "hr-agent-service/internal/domain/goal"
	pkgerrors "hr-agent-service/pkg/errors"
)

// GoalRepoPG implements performance goal data access using PostgreSQL and GORM.
type GoalRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGoalRepoPG creates a new instance of GoalRepoPG.
func NewGoalRepoPG(db *gorm.DB, log *zap.Logger) *GoalRepoPG {
	return &GoalRepoPG{db: db, log: log}
}

// GoalSchema represents the database schema for the performance_goals table.
type GoalSchema struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64     `gorm:"not null;index"`
	Title       string    `gorm:"not null;size:200"`
	Description string    ``
	Status      string    `gorm:"not null;size:20;index"`
	Progress    int       `gorm:"not null;default:0"`
	DueDate     time.Time ``
	CreatedAt   time.Time ``
	UpdatedAt   time.Time ``
}

// TableName specifies the table name for the GoalSchema model.
func (GoalSchema) TableName() string {
	return "performance_goals"
}

func (s *GoalSchema) toDomain() *domain.PerformanceGoal {
	return &domain.PerformanceGoal{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		Title:       s.Title,
		Description: s.Description,
		Status:      domain.Status(s.Status),
		Progress:    s.Progress,
		DueDate:     s.DueDate,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Create inserts a new performance goal.
func (r *GoalRepoPG) Create(ctx context.Context, g *domain.PerformanceGoal) (int64, error) {
	if g == nil {
		return 0, errors.New("goal cannot be nil")
	}

	model := GoalSchema{
		EmployeeID:  g.EmployeeID,
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		Progress:    g.Progress,
		DueDate:     g.DueDate,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create goal in db", zap.Error(err), zap.Int64("employee_id", g.EmployeeID))
		return 0, fmt.Errorf("failed to create goal: %w", err)
	}

	r.log.Info("goal created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a performance goal by ID.
func (r *GoalRepoPG) GetByID(ctx context.Context, id int64) (*domain.PerformanceGoal, error) {
	var model GoalSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("goal not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("goal", fmt.Sprintf("goal not found: id=%d", id))
		}
		r.log.Error("failed to get goal from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return model.toDomain(), nil
}

// Update updates an existing performance goal.
func (r *GoalRepoPG) Update(ctx context.Context, g *domain.PerformanceGoal) (int64, error) {
	if g == nil {
		return 0, errors.New("goal cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&GoalSchema{}).Where("id = ?", g.ID).Updates(map[string]any{
		"title":       g.Title,
		"description": g.Description,
		"status":      string(g.Status),
		"progress":    g.Progress,
		"due_date":    g.DueDate,
	})
	if res.Error != nil {
		r.log.Error("failed to update goal in db", zap.Error(res.Error), zap.Int64("id", g.ID))
		return 0, fmt.Errorf("failed to update goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("goal", fmt.Sprintf("goal not found: id=%d", g.ID))
	}

	r.log.Info("goal updated in db", zap.Int64("id", g.ID))
	return g.ID, nil
}

// Delete removes a performance goal by ID.
func (r *GoalRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid goal id")
	}

	res := r.db.WithContext(ctx).Delete(&GoalSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete goal in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("goal", fmt.Sprintf("goal not found: id=%d", id))
	}

	r.log.Info("goal deleted in db", zap.Int64("id", id))
	return id, nil
}

// List retrieves goals visible within the given employee scope.
// A nil employeeIDs slice means no scope restriction.
func (r *GoalRepoPG) List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.PerformanceGoal, int64, error) {
	base := r.db.WithContext(ctx).Model(&GoalSchema{})
	if employeeIDs != nil {
		base = base.Where("employee_id IN ?", employeeIDs)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count goals", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count goals: %w", err)
	}

	var models []GoalSchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list goals from db", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}

	goals := make([]domain.PerformanceGoal, len(models))
	for i := range models {
		goals[i] = *models[i].toDomain()
	}
	return goals, total, nil
}

// CountOpen returns the number of goals not yet completed.
func (r *GoalRepoPG) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&GoalSchema{}).
		Where("status <> ?", string(domain.StatusCompleted)).
		Count(&count).Error
	if err != nil {
		r.log.Error("failed to count open goals", zap.Error(err))
		return 0, fmt.Errorf("failed to count open goals: %w", err)
	}
	return count, nil
}
