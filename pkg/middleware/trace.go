package middleware

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type traceMiddleware struct{}

// NewTraceMiddleware propagates X-Trace-Id, generating one when the caller
// did not send it.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Locals(common.TraceIdKey, traceID)
		c.SetUserContext(context.WithValue(c.UserContext(), common.TraceIdKey, traceID))
		c.Set(common.TraceIDHeader, traceID)
		return c.Next()
	}
}
