package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the authenticated operator's ID in
// the request context. Using a custom type prevents collisions.
const operatorIDKey = contextKey("operatorID")

// GetOperatorIDFromContext retrieves the authenticated operator ID from the
// Gin context. It returns the ID and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(operatorIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
