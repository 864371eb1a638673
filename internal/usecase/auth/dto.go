package auth

// LoginRequest represents the credentials presented at login.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// LoginResponse carries the issued access token and the employee identity.
type LoginResponse struct {
	Token      string
	EmployeeID int64
	Name       string
	Role       string
	ExpiresIn  int64 // seconds
}

// ChangePasswordRequest represents an authenticated password change.
type ChangePasswordRequest struct {
	EmployeeID      int64  `validate:"required,min=1"`
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8,max=72"`
}

// ChangePasswordResponse confirms the password change.
type ChangePasswordResponse struct {
	EmployeeID int64
}
