package response

import (
	"fmt"
	"net/http"

	"vitalguard-api/pkg/errors"

	"github.com/gin-gonic/gin"
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

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError()))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError()))
}

func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.PermissionError:
		return http.StatusForbidden, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends an error response (status + JSON envelope).
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// HttpError sends a response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the corresponding HTTPError,
// falling back to Error for unmapped errors.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

// PanicError handles panic recovery and sends an error response.
func PanicError(c *gin.Context, err any) {
	if errVal, ok := err.(error); ok {
		statusCode, resp := parseError(errVal)
		c.JSON(statusCode, resp)
		return
	}
	statusCode, resp := parseError(fmt.Errorf("%v", err))
	c.JSON(statusCode, resp)
}
