package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, statements.ErrStatementNotFound), errors.Is(err, statements.ErrResponseNotFound):
		return http.StatusNotFound
	case errors.Is(err, statements.ErrStatementExists):
		return http.StatusConflict
	case errors.Is(err, statements.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}
