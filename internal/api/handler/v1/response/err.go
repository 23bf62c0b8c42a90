package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope returned by every endpoint.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

// WithStatus attaches an outcome status (e.g. "FAILED") to the envelope.
func (e *Err) WithStatus(status string) *Err {
	e.Status = status
	return e
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", e.HTTPStatusCode),
			zap.Error(e.Err))
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "invalid username or password",
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "authentication required",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		Message:        err.Error(),
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		HTTPStatusCode: http.StatusTooManyRequests,
		Message:        "rate limit exceeded",
	}
}

func ErrBadGateway(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadGateway,
		Message:        "payment gateway unavailable",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
	}
}
