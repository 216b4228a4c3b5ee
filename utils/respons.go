package utils

import "github.com/gin-gonic/gin"

// MessageResponse is the flat response body every route answers with.
// The frontend depends on this exact shape, so no envelope around it.
type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func RespondRedirect(c *gin.Context, code int, message, redirect string) {
	c.JSON(code, MessageResponse{Message: message, Redirect: redirect})
}
