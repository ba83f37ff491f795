package dto

import "time"

// LoginRequest carries the name + short-id pair used to sign in.
type LoginRequest struct {
	Name    string `json:"name" binding:"required"`
	ShortID string `json:"shortID" binding:"required,len=6,numeric"`
}

// LoginResponse returns the access token and the signed-in member profile.
// The refresh token travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Member    MemberResponse `json:"member"`
}
