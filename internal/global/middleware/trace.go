package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Trace opens a server span per request when OTel is enabled.
func Trace() gin.HandlerFunc {
	tracer := otel.Tracer("glowup-diaries/http")
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(),
			fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
		if c.Writer.Status() >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
	}
}
