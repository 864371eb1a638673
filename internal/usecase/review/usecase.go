package review

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	empdomain "hr-agent-service/internal/domain/employee"
	domain "hr-agent-service/internal/domain/review"
	"hr-agent-service/internal/usecase/access"
	"hr-agent-service/internal/usecase/employee"
	pkgerrors "hr-agent-service/pkg/errors"
)

// Repository defines the interface for review data access operations.
type Repository interface {
	Create(ctx context.Context, rv *domain.PerformanceReview) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PerformanceReview, error)
	Update(ctx context.Context, rv *domain.PerformanceReview) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, employeeIDs []int64, page, limit int64) ([]domain.PerformanceReview, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// EmployeeGetter resolves employee references for existence checks.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id int64) (*empdomain.Employee, error)
}

// Service implements the business logic for performance reviews.
// All reads and writes pass through the access-scope resolver.
type Service struct {
	repo      Repository
	employees EmployeeGetter
	scopes    *access.Resolver
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new review Service.
func New(r Repository, employees EmployeeGetter, scopes *access.Resolver, log *zap.Logger) *Service {
	return &Service{
		repo:      r,
		employees: employees,
		scopes:    scopes,
		log:       log,
		validate:  validator.New(),
	}
}

// CreateReview authors a review for an employee. Only managers (for their
// reports) and admins may author reviews; new reviews start in DRAFT.
func (s *Service) CreateReview(ctx context.Context, in CreateReviewRequest) (*CreateReviewResponse, error) {
	s.log.Info("creating review",
		zap.Int64("actor_id", in.Actor.ID),
		zap.Int64("employee_id", in.EmployeeID),
		zap.String("period", in.Period))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	if in.Actor.Role == empdomain.RoleUser {
		return nil, pkgerrors.NewForbiddenError("only managers and admins may author reviews")
	}

	allowed, err := s.scopes.CanAccess(ctx, in.Actor, in.EmployeeID)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to resolve access scope", err)
	}
	if !allowed {
		s.log.Warn("review create outside scope", zap.Int64("actor_id", in.Actor.ID), zap.Int64("employee_id", in.EmployeeID))
		return nil, pkgerrors.NewForbiddenError("employee is outside your scope")
	}

	if _, err := s.employees.GetByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &domain.PerformanceReview{
		EmployeeID:   in.EmployeeID,
		ReviewerID:   in.Actor.ID,
		Period:       in.Period,
		Rating:       in.Rating,
		Strengths:    in.Strengths,
		Improvements: in.Improvements,
		Status:       domain.StatusDraft,
	})
	if err != nil {
		s.log.Error("failed to create review", zap.Error(err))
		return nil, err
	}
	return &CreateReviewResponse{ID: id}, nil
}

// GetReview retrieves a review the actor is allowed to see.
func (s *Service) GetReview(ctx context.Context, in GetReviewRequest) (*GetReviewResponse, error) {
	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid review id")
	}

	rv, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.scopes.CanAccess(ctx, in.Actor, rv.EmployeeID)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to resolve access scope", err)
	}
	if !allowed {
		s.log.Warn("review read outside scope", zap.Int64("actor_id", in.Actor.ID), zap.Int64("review_id", in.ID))
		return nil, pkgerrors.NewForbiddenError("review is outside your scope")
	}

	return &GetReviewResponse{Review: toDTO(rv)}, nil
}

// UpdateReview applies changes within the role matrix: a USER may only
// acknowledge their own submitted review, a MANAGER may edit reviews they
// authored for their reports, an ADMIN is unrestricted.
func (s *Service) UpdateReview(ctx context.Context, in UpdateReviewRequest) (*UpdateReviewResponse, error) {
	s.log.Info("updating review", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, employee.FormatValidationError(err)
	}

	rv, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	switch in.Actor.Role {
	case empdomain.RoleAdmin:
		// unrestricted
	case empdomain.RoleManager:
		allowed, err := s.scopes.CanAccess(ctx, in.Actor, rv.EmployeeID)
		if err != nil {
			return nil, pkgerrors.NewInternalError("failed to resolve access scope", err)
		}
		if !allowed || rv.ReviewerID != in.Actor.ID {
			return nil, pkgerrors.NewForbiddenError("you may only edit reviews you authored for your reports")
		}
		if in.Status == string(domain.StatusAcknowledged) {
			return nil, pkgerrors.NewForbiddenError("only the reviewed employee may acknowledge")
		}
	default:
		// A USER touches nothing but the status of their own submitted review.
		if rv.EmployeeID != in.Actor.ID {
			return nil, pkgerrors.NewForbiddenError("review is outside your scope")
		}
		if in.Period != "" || in.Rating != 0 || in.Strengths != "" || in.Improvements != "" {
			return nil, pkgerrors.NewForbiddenError("you may only acknowledge your review")
		}
		if in.Status != string(domain.StatusAcknowledged) {
			return nil, pkgerrors.NewForbiddenError("you may only acknowledge your review")
		}
		if rv.Status != domain.StatusSubmitted {
			return nil, pkgerrors.NewValidationError("status", "only a submitted review can be acknowledged")
		}
	}

	if in.Period != "" {
		rv.Period = in.Period
	}
	if in.Rating != 0 {
		rv.Rating = in.Rating
	}
	if in.Strengths != "" {
		rv.Strengths = in.Strengths
	}
	if in.Improvements != "" {
		rv.Improvements = in.Improvements
	}
	if in.Status != "" {
		status := domain.Status(in.Status)
		if !status.Valid() {
			return nil, pkgerrors.NewValidationError("status", fmt.Sprintf("unknown status %q", in.Status))
		}
		rv.Status = status
	}

	id, err := s.repo.Update(ctx, rv)
	if err != nil {
		s.log.Error("failed to update review", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateReviewResponse{ID: id}, nil
}

// DeleteReview removes a review. Admins delete anything; managers may
// delete drafts they authored.
func (s *Service) DeleteReview(ctx context.Context, in DeleteReviewRequest) (*DeleteReviewResponse, error) {
	s.log.Info("deleting review", zap.Int64("actor_id", in.Actor.ID), zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid review id")
	}

	rv, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	switch in.Actor.Role {
	case empdomain.RoleAdmin:
		// unrestricted
	case empdomain.RoleManager:
		if rv.ReviewerID != in.Actor.ID || rv.Status != domain.StatusDraft {
			return nil, pkgerrors.NewForbiddenError("you may only delete drafts you authored")
		}
	default:
		return nil, pkgerrors.NewForbiddenError("you may not delete reviews")
	}

	id, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete review", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteReviewResponse{ID: id}, nil
}

// ListReviews retrieves the reviews visible to the actor, paginated.
func (s *Service) ListReviews(ctx context.Context, in ListReviewsRequest) (*ListReviewsResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	scope, err := s.scopes.VisibleScope(ctx, in.Actor)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to resolve access scope", err)
	}

	s.log.Info("listing reviews",
		zap.Int64("actor_id", in.Actor.ID),
		zap.Bool("scope_all", scope.All),
		zap.Int64("page", in.Page),
		zap.Int64("limit", in.Limit))

	reviews, total, err := s.repo.List(ctx, scope.Filter(), in.Page, in.Limit)
	if err != nil {
		s.log.Error("failed to list reviews", zap.Error(err))
		return nil, err
	}

	out := make([]Review, len(reviews))
	for i := range reviews {
		out[i] = toDTO(&reviews[i])
	}

	totalPages := int64(0)
	if in.Limit > 0 {
		totalPages = (total + in.Limit - 1) / in.Limit
	}

	return &ListReviewsResponse{
		Reviews: out,
		Pagination: &Pagination{
			Total:      total,
			Page:       in.Page,
			Limit:      in.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

func toDTO(rv *domain.PerformanceReview) Review {
	return Review{
		ID:           rv.ID,
		EmployeeID:   rv.EmployeeID,
		ReviewerID:   rv.ReviewerID,
		Period:       rv.Period,
		Rating:       rv.Rating,
		Strengths:    rv.Strengths,
		Improvements: rv.Improvements,
		Status:       string(rv.Status),
		CreatedAt:    rv.CreatedAt,
		UpdatedAt:    rv.UpdatedAt,
	}
}
