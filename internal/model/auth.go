package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	User  string `json:"user"`
}

type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
