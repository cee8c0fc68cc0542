package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError decides the status;
// anything else is answered as a bad request. A 500 never exposes its message.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	msg := err.Error()

	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		status = he.StatusCode
		msg = he.Message
	}
	if status == http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: status,
		Message:   msg,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
