package dto

// LoginRequest represents the POST /login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is flat rather than enveloped under data; the client reads
// user_id/role_id/email off the top level.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  uint64 `json:"user_id"`
	RoleID  uint8  `json:"role_id"`
	Email   string `json:"email"`
}
