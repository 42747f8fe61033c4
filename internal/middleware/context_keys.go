package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the authenticated actor's ID.
const actorIDKey = contextKey("actorID")

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin context,
// falling back to the request context.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(actorIDKey)); exists {
		actorID, ok := v.(string)
		return actorID, ok && actorID != ""
	}
	if v, ok := c.Request.Context().Value(actorIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
