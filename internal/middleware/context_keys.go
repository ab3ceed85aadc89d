package middleware

import "github.com/gin-gonic/gin"

const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, checking the request context as well. It returns the user ID and
// whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := userIDVal.(string); ok {
			return userID, true
		}
		return "", false
	}
	if userIDVal := c.Request.Context().Value(userIDKey); userIDVal != nil {
		if userID, ok := userIDVal.(string); ok {
			return userID, true
		}
	}
	return "", false
}
