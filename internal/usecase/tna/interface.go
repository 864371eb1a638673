package tna

import "context"

// Usecase defines the interface for training needs analysis operations.
type Usecase interface {
	CreateTNA(ctx context.Context, in CreateTNARequest) (*CreateTNAResponse, error)
	GetTNA(ctx context.Context, in GetTNARequest) (*GetTNAResponse, error)
	UpdateTNA(ctx context.Context, in UpdateTNARequest) (*UpdateTNAResponse, error)
	DeleteTNA(ctx context.Context, in DeleteTNARequest) (*DeleteTNAResponse, error)
	ListTNA(ctx context.Context, in ListTNARequest) (*ListTNAResponse, error)
}
