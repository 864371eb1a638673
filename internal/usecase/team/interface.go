package team

import "context"

// Usecase defines the interface for team membership operations.
type Usecase interface {
	AddMember(ctx context.Context, in AddMemberRequest) (*AddMemberResponse, error)
	RemoveMember(ctx context.Context, in RemoveMemberRequest) (*RemoveMemberResponse, error)
	ListMembers(ctx context.Context, in ListMembersRequest) (*ListMembersResponse, error)
}
