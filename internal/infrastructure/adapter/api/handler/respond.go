package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	domainerr "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/dto"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/middleware"
)

// respondError maps a domain error onto its HTTP status, code and
// client-safe message.
func respondError(c *gin.Context, err error) {
	c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.Message(err),
	})
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidationError,
		Message: message,
	})
}

// mustClaims fetches the authenticated claims; the auth middleware
// guarantees they exist on every protected route.
func mustClaims(c *gin.Context) (entity.AuthClaims, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorizedUser),
			Message: "Authentication required",
		})
		return entity.AuthClaims{}, false
	}
	return claims, true
}
