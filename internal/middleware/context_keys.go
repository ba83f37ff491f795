package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated member's id in the context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated member id from the Gin
// context, checking the request context as well. The boolean reports whether
// an id was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if v := c.Request.Context().Value(userIDKey); v != nil {
			if id, ok := v.(string); ok {
				return id, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
