package access

import (
	"context"

	"go.uber.org/zap"

	domain "hr-agent-service/internal/domain/employee"
)

// Actor identifies the authenticated caller for scope decisions.
type Actor struct {
	ID   int64
	Role domain.Role
}

// Scope describes which employees' records an actor may see.
// When All is true EmployeeIDs is nil and no restriction applies.
type Scope struct {
	All         bool
	EmployeeIDs []int64
}

// Allows reports whether a record owned by employeeID falls inside the scope.
func (s Scope) Allows(employeeID int64) bool {
	if s.All {
		return true
	}
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// Filter returns the employee-ID restriction to apply to list queries,
// nil meaning unrestricted.
func (s Scope) Filter() []int64 {
	if s.All {
		return nil
	}
	return s.EmployeeIDs
}

// TeamRepository is the membership lookup the resolver needs.
type TeamRepository interface {
	ListReports(ctx context.Context, managerID int64) ([]int64, error)
}

// Resolver derives a visibility scope from an actor's role.
// USER sees self only, MANAGER sees self plus direct reports,
// ADMIN is unrestricted.
type Resolver struct {
	teams TeamRepository
	log   *zap.Logger
}

// NewResolver creates a scope resolver backed by the team repository.
func NewResolver(teams TeamRepository, log *zap.Logger) *Resolver {
	return &Resolver{teams: teams, log: log}
}

// VisibleScope computes the scope for the actor.
func (r *Resolver) VisibleScope(ctx context.Context, actor Actor) (Scope, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return Scope{All: true}, nil
	case domain.RoleManager:
		reports, err := r.teams.ListReports(ctx, actor.ID)
		if err != nil {
			r.log.Error("failed to resolve manager scope", zap.Int64("manager_id", actor.ID), zap.Error(err))
			return Scope{}, err
		}
		return Scope{EmployeeIDs: append([]int64{actor.ID}, reports...)}, nil
	default:
		return Scope{EmployeeIDs: []int64{actor.ID}}, nil
	}
}

// CanAccess reports whether the actor's scope covers the given employee's records.
func (r *Resolver) CanAccess(ctx context.Context, actor Actor, employeeID int64) (bool, error) {
	scope, err := r.VisibleScope(ctx, actor)
	if err != nil {
		return false, err
	}
	return scope.Allows(employeeID), nil
}
