package dto

// LoginRequest defines user login credentials. All three must match the
// account exactly; the compare is case-sensitive.
type LoginRequest struct {
	Name          string `json:"name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	AccountNumber int64  `json:"accountNumber" binding:"required"`
}

// AdminLoginRequest defines the admin login credentials.
type AdminLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token issued after a successful login.
type LoginResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account,omitempty"`
}

// RegisterResponse is returned after self-service signup.
type RegisterResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Message       string `json:"message"`
}
