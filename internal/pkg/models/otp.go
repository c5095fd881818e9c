package models

// LoginRequest represents a request to start an OTP login
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyRequest represents a request to verify an OTP code
type VerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// AdminLoginRequest represents an admin email/password login request
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Domain    string `json:"domain"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// CreateAdminRequest represents a superadmin request to create an admin user
type CreateAdminRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UpdateAdminRoleRequest represents a superadmin request to change an admin's role
type UpdateAdminRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// OTPNotification is the message published for SMS dispatch
type OTPNotification struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}
