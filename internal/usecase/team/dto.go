package team

import "time"

// AddMemberRequest assigns an employee to a manager's team.
type AddMemberRequest struct {
	ManagerID  int64 `validate:"required,min=1"`
	EmployeeID int64 `validate:"required,min=1"`
}

// AddMemberResponse represents the response payload after adding a member.
type AddMemberResponse struct {
	ID int64
}

// RemoveMemberRequest removes an employee from a manager's team.
type RemoveMemberRequest struct {
	ManagerID  int64 `validate:"required,min=1"`
	EmployeeID int64 `validate:"required,min=1"`
}

// RemoveMemberResponse represents the response payload after removal.
type RemoveMemberResponse struct {
	Removed bool
}

// ListMembersRequest lists the members reporting to a manager.
type ListMembersRequest struct {
	ManagerID int64 `validate:"required,min=1"`
}

// Member represents a team membership DTO for API responses.
type Member struct {
	ID         int64
	ManagerID  int64
	EmployeeID int64
	Name       string
	Email      string
	Title      string
	CreatedAt  time.Time
}

// ListMembersResponse represents the response payload for team listing.
type ListMembersResponse struct {
	Members []Member
}
