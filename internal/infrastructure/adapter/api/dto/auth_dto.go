package dto

import "time"

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Status    string    `json:"status"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ContactVerifiedRequest is the body of the verification webhook
type ContactVerifiedRequest struct {
	UID string `json:"uid" binding:"required"`
}
