package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
)

const validatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh value from newBody and
// validates its binding tags. An empty body binds to the zero value.
func ValidateRequest(newBody func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newBody()
		if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.HandleValidationError(err))
			return
		}

		c.Set(validatedBodyKey, obj)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(validatedBodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}
