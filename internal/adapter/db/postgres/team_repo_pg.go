package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "hr-agent-service/internal/domain/team"
	pkgerrors "hr-agent-service/pkg/errors"
)

// TeamRepoPG implements team membership data access using PostgreSQL and GORM.
type TeamRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTeamRepoPG creates a new instance of TeamRepoPG.
func NewTeamRepoPG(db *gorm.DB, log *zap.Logger) *TeamRepoPG {
	return &TeamRepoPG{db: db, log: log}
}

// TeamMemberSchema represents the database schema for the team_members table.
type TeamMemberSchema struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ManagerID  int64     `gorm:"not null;index;uniqueIndex:idx_manager_employee"`
	EmployeeID int64     `gorm:"not null;index;uniqueIndex:idx_manager_employee"`
	CreatedAt  time.Time ``
}

// TableName specifies the table name for the TeamMemberSchema model.
func (TeamMemberSchema) TableName() string {
	return "team_members"
}

// AddMember records an employee as a direct report of a manager.
func (r *TeamRepoPG) AddMember(ctx context.Context, managerID, employeeID int64) (int64, error) {
	if managerID <= 0 || employeeID <= 0 {
		return 0, errors.New("invalid member ids")
	}

	model := TeamMemberSchema{ManagerID: managerID, EmployeeID: employeeID}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to add team member", zap.Error(err),
			zap.Int64("manager_id", managerID), zap.Int64("employee_id", employeeID))
		return 0, fmt.Errorf("failed to add team member: %w", err)
	}

	r.log.Info("team member added", zap.Int64("manager_id", managerID), zap.Int64("employee_id", employeeID))
	return model.ID, nil
}

// RemoveMember deletes a membership row.
func (r *TeamRepoPG) RemoveMember(ctx context.Context, managerID, employeeID int64) error {
	res := r.db.WithContext(ctx).
		Where("manager_id = ? AND employee_id = ?", managerID, employeeID).
		Delete(&TeamMemberSchema{})
	if res.Error != nil {
		r.log.Error("failed to remove team member", zap.Error(res.Error),
			zap.Int64("manager_id", managerID), zap.Int64("employee_id", employeeID))
		return fmt.Errorf("failed to remove team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError("team member", "team membership not found")
	}

	r.log.Info("team member removed", zap.Int64("manager_id", managerID), zap.Int64("employee_id", employeeID))
	return nil
}

// ListReports returns the employee IDs directly reporting to a manager.
func (r *TeamRepoPG) ListReports(ctx context.Context, managerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&TeamMemberSchema{}).
		Where("manager_id = ?", managerID).
		Order("employee_id").
		Pluck("employee_id", &ids).Error
	if err != nil {
		r.log.Error("failed to list reports", zap.Error(err), zap.Int64("manager_id", managerID))
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return ids, nil
}

// ListMembers returns the membership rows for a manager.
func (r *TeamRepoPG) ListMembers(ctx context.Context, managerID int64) ([]domain.Member, error) {
	var models []TeamMemberSchema
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("employee_id").
		Find(&models).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("failed to list team members", zap.Error(err), zap.Int64("manager_id", managerID))
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	members := make([]domain.Member, len(models))
	for i, m := range models {
		members[i] = domain.Member{
			ID:         m.ID,
			ManagerID:  m.ManagerID,
			EmployeeID: m.EmployeeID,
			CreatedAt:  m.CreatedAt,
		}
	}
	return members, nil
}
