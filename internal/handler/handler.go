// Package handler holds the request helpers shared by the per-resource
// handlers in its subpackages.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-directory/pkg/errors"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
	"github.com/jwalitptl/clinic-directory/pkg/validator"
)

// BindJSON decodes and validates the request body into obj. On failure it
// writes a 400 with per-field errors under message and returns false.
func BindJSON(c *gin.Context, obj interface{}, message string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httputil.RespondWithError(c, errors.NewValidation(message, validator.FieldErrors(err), err), message)
		return false
	}
	return true
}

// BindQuery binds query parameters into obj
func BindQuery(c *gin.Context, obj interface{}, message string) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		httputil.RespondWithError(c, errors.NewValidation(message, validator.FieldErrors(err), err), message)
		return false
	}
	return true
}

// ParseID reads the :id path parameter. An id that is not a UUID cannot name
// any stored entity, so it is answered with the resource's 404.
func ParseID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound := errors.NewNotFound(resource, err)
		httputil.RespondWithError(c, notFound, notFound.Message)
		return uuid.Nil, false
	}
	return id, true
}
