package http

import "github.com/gin-gonic/gin"

// messageJSON responde con el cuerpo {"message": msg} usado por todos los errores del API.
func messageJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
