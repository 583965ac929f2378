package response

import (
	"errors"
	"net/http"

	"glowup-diaries/config"

	"github.com/gin-gonic/gin"
)

// ResponseBody is the uniform JSON envelope. Code 200 means success;
// anything else is one of the errors.go codes.
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success replies 200 with an optional data payload.
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail replies with the error's code and message. Non-*Error values
// are wrapped as ErrServer. Origin text is stripped outside debug mode.
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServer.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}

	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)
	c.JSON(httpStatus(e.Code), body)
}

// Recovery is deferred by the recovery middleware; it converts panics
// into a 500 response on the current request.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		var err error
		switch v := r.(type) {
		case error:
			err = v
		default:
			err = errors.New("panic")
		}
		Fail(c, ErrServer.WithOrigin(err))
		c.Abort()
	}
}

// httpStatus maps internal codes onto HTTP status codes. Extended
// codes (5 digits) share the status of their leading three.
func httpStatus(code int32) int {
	for code >= 1000 {
		code /= 100
	}
	switch code {
	case 200:
		return http.StatusOK
	case 400:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 403:
		return http.StatusForbidden
	case 404:
		return http.StatusNotFound
	case 409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
