package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func RespondOK(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, apiResponse{Data: obj})
}

func RespondBadRequestErr(c *gin.Context, errs []error) {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, apiResponse{Errors: messages})
}

func RespondNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, apiResponse{Errors: []string{"notFound"}})
}

func RespondInternalErr(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiResponse{Errors: []string{"internalError"}})
}
