package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "hr-agent-service/internal/domain/review"
	pkgerrors "hr-agent-service/pkg/errors"
)

// ReviewRepoPG implements performance review data access using PostgreSQL and GORM.
type ReviewRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewReviewRepoPG creates a new instance of ReviewRepoPG.
func NewReviewRepoPG(db *gorm.DB, log *zap.Logger) *ReviewRepoPG {
	return &ReviewRepoPG{db: db, log: log}
}

// ReviewSchema represents the database schema for the performance_reviews table.
type ReviewSchema struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID   int64     `gorm:"not null;index"`
	ReviewerID   int64     `gorm:"not null;index"`
	Period       string    `gorm:"not null;size:20"`
	Rating       int       `gorm:"not null"`
	Strengths    string    ``
	Improvements string    ``
	Status       string    `gorm:"not null;size:20;index"`
	CreatedAt    time.Time ``
	UpdatedAt    time.Time ``
}

// TableName specifies the table name for the ReviewSchema model.
func (ReviewSchema) TableName() string {
	return "performance_reviews"
}

func (s *ReviewSchema) toDomain() *domain.PerformanceReview {
	return &domain.PerformanceReview{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		ReviewerID:   s.ReviewerID,
		Period:       s.Period,
		Rating:       s.Rating,
		Strengths:    s.Strengths,
		Improvements: s.Improvements,
		Status:       domain.Status(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// Create inserts a new performance review.
func (r *ReviewRepoPG) Create(ctx context.Context, rv *domain.PerformanceReview) (int64, error) {
	if rv == nil {
		return 0, errors.New("review cannot be nil")
	}

	model := ReviewSchema{
		EmployeeID:   rv.EmployeeID,
		ReviewerID:   rv.ReviewerID,
		Period:       rv.Period,
		Rating:       rv.Rating,
		Strengths:    rv.Strengths,
		Improvements: rv.Improvements,
		Status:       string(rv.Status),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create review in db", zap.Error(err), zap.Int64("employee_id", rv.EmployeeID))
		return 0, fmt.Errorf("failed to create review: %w", err)
	}

	r.log.Info("review created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a performance review by ID.
func (r *ReviewRepoPG) GetByID(ctx context.Context, id int64) (*domain.PerformanceReview, error) {
	var model ReviewSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("review not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("review", fmt.Sprintf("review not found: id=%d", id))
		}
		r.log.Error("failed to get review from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return model.toDomain(), nil
}

// Update updates an existing performance review.
func (r *ReviewRepoPG) Update(ctx context.Context, rv *domain.PerformanceReview) (int64, error) {
	if rv == nil {
		return 0, errors.New("review cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&ReviewSchema{}).Where("id = ?", rv.ID).Updates(map[string]any{
		"period":       rv.Period,
		"rating":       rv.Rating,
		"strengths":    rv.Strengths,
		"improvements": rv.Improvements,
		"status":       string(rv.Status),
	})
	if res.Error != nil {
		r.log.Error("failed to update review in db", zap.Error(res.Error), zap.Int64("id", rv.ID))
		return 0, fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("review", fmt.Sprintf("review not found: id=%d", rv.ID))
	}

	r.log.Info("review updated in db", zap.Int64("id", rv.ID))
	return rv.ID, nil
}

// Delete removes a performance review by ID.
func (r *ReviewRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid review id")
	}

	res := r.db.WithContext(ctx).Delete(&ReviewSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete review in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, pkgerrors.NewNotFoundError("review", fmt.Sprintf("review not found: id=%d", id))
	}

	r.log.Info("review deleted in db", zap.Int64("id", id))
	return id, nil
}

// List retrieves reviews visible within the given employee scope.
// A nil employeeIDs slice means no scope restriction.
func (r *ReviewRepoPG) List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.PerformanceReview, int64, error) {
	base := r.db.WithContext(ctx).Model(&ReviewSchema{})
	if employeeIDs != nil {
		base = base.Where("employee_id IN ?", employeeIDs)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.log.Error("failed to count reviews", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var models []ReviewSchema
	if err := base.Order("id").Offset(int((page - 1) * limit)).Limit(int(limit)).Find(&models).Error; err != nil {
		r.log.Error("failed to list reviews from db", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]domain.PerformanceReview, len(models))
	for i := range models {
		reviews[i] = *models[i].toDomain()
	}
	return reviews, total, nil
}

// CountByStatus returns review counts grouped by status.
func (r *ReviewRepoPG) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&ReviewSchema{}).
		Select("status, count(*) as count").Group("status").Scan(&rows).Error
	if err != nil {
		r.log.Error("failed to count reviews by status", zap.Error(err))
		return nil, fmt.Errorf("failed to count reviews by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
