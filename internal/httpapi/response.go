package httpapi

import (
	"net/http"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes err as an error envelope. The status and code come
// from the apperr classification, store failures never leak their cause.
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: apperr.MessageOf(err),
			Code:    string(apperr.CodeOf(err)),
		},
	})
}

func respondValidation(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{Message: msg, Code: string(apperr.CodeValidation)},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
