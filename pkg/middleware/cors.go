package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type corsMiddleware struct {
	handler fiber.Handler
}

// NewCORSMiddleware allows every origin when allowOrigins is empty.
func NewCORSMiddleware(allowOrigins []string) Middleware {
	origins := "*"
	if len(allowOrigins) > 0 {
		origins = strings.Join(allowOrigins, ",")
	}
	return &corsMiddleware{
		handler: cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: strings.Join([]string{
				fiber.MethodGet,
				fiber.MethodPost,
				fiber.MethodOptions,
			}, ","),
			AllowHeaders:  "*",
			ExposeHeaders: "X-Trace-Id",
		}),
	}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return m.handler
}
