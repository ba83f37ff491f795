package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashRefreshToken hashes a raw refresh token with bcrypt for at-rest storage
// on the member row. The raw token is a 64-char hex string, well under the
// bcrypt input limit.
func HashRefreshToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	return string(hash), err
}

// CompareRefreshTokenHash compares a raw refresh token against its stored
// bcrypt hash.
func CompareRefreshTokenHash(token, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(token)) == nil
}
