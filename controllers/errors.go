package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavmehta2503/Dine-Qr/pkg/resp"
	"github.com/vaibhavmehta2503/Dine-Qr/services"
)

// fail maps the service error taxonomy onto HTTP responses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrMissingTenant):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnavailable):
		resp.Unavailable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
