package utils

import "github.com/gin-gonic/gin"

// RespondWithError aborts the request with {"error": message}.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithFields aborts with a message plus per-field flags.
func RespondWithFields(c *gin.Context, status int, message string, fields interface{}) {
	c.AbortWithStatusJSON(status, gin.H{"error": message, "fields": fields})
}
