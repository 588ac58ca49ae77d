package auth

// CredentialsRequest is the body of both registration and sign-in.
type CredentialsRequest struct {
	Username string `json:"username" example:"rick"`
	Password string `json:"password" example:"cheese"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
