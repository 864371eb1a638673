package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "hr-agent-service/internal/domain/tna"
	pkgerrors "hr-agent-service/pkg/errors"
)

// TNARepoPG implements training-needs-analysis data access using PostgreSQL and GORM.
type TNARepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTNARepoPG creates a new instance of TNARepoPG.
func NewTNARepoPG(db *gorm.DB, log *zap.Logger) *TNARepoPG {
	return &TNARepoPG{db: db, log: log}
}

// TNASchema represents the database schema for the training_needs_analyses table.
type TNASchema struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID          int64     `gorm:"not null;index"`
	SkillArea           string    `gorm:"not null;size:100"`
	CurrentLevel        int       `gorm:"not null"`
	TargetLevel         int       `gorm:"not null"`
	Priority            string    `gorm:"not null;size:10"`
	RecommendedTraining string    ``
	Status              string    `gorm:"not null;size:20;index"`
	CreatedAt           time.Time ``
	UpdatedAt           time.Time ``
}

// TableName specifies the table name for the TNASchema model.
func (TNASchema) TableName() string {
	return "training_needs_analyses"
}

func (s *TNASchema) toDomain() *domain.TrainingNeedsAnalysis {
	return &domain.TrainingNeedsAnalysis{
		ID:                  s.ID,
		EmployeeID:          s.EmployeeID,
		SkillArea:           s.SkillArea,
		CurrentLevel:        s.CurrentLevel,
		TargetLevel:         s.TargetLevel,
		Priority:            domain.Priority(s.Priority),
		RecommendedTraining: s.RecommendedTraining,
		Status:              domain.Status(s.Status),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// Create inserts a new TNA record.
func (r *TNARepoPG) Create(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error) {
	if t == nil {
		return 0, errors.New("tna record cannot be nil")
	}

	model := TNASchema{
		EmployeeID:          t.EmployeeID,
		SkillArea:           t.SkillArea,
		CurrentLevel:        t.CurrentLevel,
		TargetLevel:         t.TargetLevel,
		Priority:            string(t.Priority),
		RecommendedTraining: t.RecommendedTraining,
		Status:              string(t.Status),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create tna record in db", zap.Error(err), zap.Int64("employee_id", t.EmployeeID))
		return 0, fmt.Errorf("failed to create tna record: %w", err)
	}

	r.log.Info("tna record created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a TNA record by ID.
func (r *TNARepoPG) GetByID(ctx context.Context, id int64) (*domain.TrainingNeedsAnalysis, error) {
	var model TNASchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("tna record not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("tna record", fmt.Sprintf("tna record not found: id=%d", id))
		}
		r.log.Error("failed to get tna record from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get tna record: %w", err)
	}

	return model.toDomain(), nil
}

// Update updates an existing TNA record.
func (r *TNARepoPG) Update(ctx context.Context, t *domain.TrainingNeedsAnalysis) (int64, error) {
	if t == nil {
		return 0, errors.New("tna record cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&TNASchema{}).Where("id = ?", t.ID).Updates(map[string]any{
		"skill_area":           t.SkillArea,
		"current_level":        t.CurrentLevel,
		"target_level":         t.TargetLevel,
		"priority":             string(t.Priority),
		"recommended_training": t.RecommendedTraining,
		"status":               string(t.Status),
	})
	if res.Error != nil {
		r.log.Error("failed to update tna record in db", zap.Error(res.Error), zap.Int64("id", t.ID))
		return 0, fmt.Errorf("failed to update tna record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("tna record", fmt.Sprintf("tna record not found: id=%d", t.ID))
	}

	r.log.Info("tna record updated in db", zap.Int64("id", t.ID))
	return t.ID, nil
}

// Delete removes a TNA record by ID.
func (r *TNARepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid tna record id")
	}

	res := r.db.WithContext(ctx).Delete(&TNASchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete tna record in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete tna record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("tna record", fmt.Sprintf("tna record not found: id=%d", id))
	}

	r.log.Info("tna record deleted in db", zap.Int64("id", id))
	return id, nil
}

// List retrieves TNA records visible within the given employee scope.
// A nil employeeIDs slice means no scope restriction.
func (r *TNARepoPG) List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.TrainingNeedsAnalysis, int64, error) {
	base := r.db.WithContext(ctx).Model(&TNASchema{})
	if employeeIDs != nil {
		base = base.Where("employee_id IN ?", employeeIDs)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count tna records", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count tna records: %w", err)
	}

	var models []TNASchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list tna records from db", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list tna records: %w", err)
	}

	records := make([]domain.TrainingNeedsAnalysis, len(models))
	for i := range models {
		records[i] = *models[i].toDomain()
	}
	return records, total, nil
}

// CountPending returns the number of TNA records still pending.
func (r *TNARepoPG) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TNASchema{}).
		Where("status = ?", string(domain.StatusPending)).
		Count(&count).Error
	if err != nil {
		r.log.Error("failed to count pending tna records", zap.Error(err))
		return 0, fmt.Errorf("failed to count pending tna records: %w", err)
	}
	return count, nil
}
