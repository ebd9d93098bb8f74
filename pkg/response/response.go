package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: msg})
}

// Conflict reports detected duplicates together with the full matches.
func Conflict(c *gin.Context, matches interface{}) {
	c.JSON(http.StatusConflict, gin.H{"duplicate": true, "matches": matches})
}
