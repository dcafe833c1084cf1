package ginserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apidemo/internal/domain/user"
)

const (
	helloMessage   = "Hello from Gin!"
	createdMessage = "User created"
	detailMessage  = "Get user detail"
)

func hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": helloMessage})
}

func createUser(c *gin.Context) {
	var u user.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": createdMessage,
		"user":    u,
	})
}

func getUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": detailMessage,
		"id":      c.Param("id"),
	})
}
