package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindOptionalJSON binds the request body into obj, treating an empty body
// as absent. It reports whether a body was bound.
func bindOptionalJSON(c *gin.Context, obj any) (bool, error) {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
