package router_test

import (
	"net/http/httptest"
	"testing"

	handlers "github.com/NeuralTrust/TrustTag/pkg/handlers/http"
	"github.com/NeuralTrust/TrustTag/pkg/middleware"
	"github.com/NeuralTrust/TrustTag/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{ name string }

func (h stubHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(h.name)
}

func fullTransport() *handlers.HandlerTransport {
	return &handlers.HandlerTransport{
		RootHandler:          stubHandler{"root"},
		HealthHandler:        stubHandler{"health"},
		VersionHandler:       stubHandler{"version"},
		TagAssetsHandler:     stubHandler{"tag"},
		FindSimilarHandler:   stubHandler{"similar"},
		AnalyzeDesignHandler: stubHandler{"design"},
	}
}

func TestAPIRouter_BuildRoutes(t *testing.T) {
	app := fiber.New()
	r := router.NewAPIRouter(&middleware.Transport{TraceMiddleware: middleware.NewTraceMiddleware()}, fullTransport())
	require.NoError(t, r.BuildRoutes(app))

	routes := []struct {
		method, path, want string
	}{
		{"GET", router.RootPath, "root"},
		{"GET", router.HealthPath, "health"},
		{"GET", router.VersionPath, "version"},
		{"POST", router.TagAssetsPath, "tag"},
		{"POST", router.FindSimilarPath, "similar"},
		{"POST", router.AnalyzeDesignPath, "design"},
	}
	for _, rt := range routes {
		resp, err := app.Test(httptest.NewRequest(rt.method, rt.path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, rt.path)
		assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"), rt.path)
	}

	resp, err := app.Test(httptest.NewRequest("GET", router.TagAssetsPath, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAPIRouter_IncompleteTransport(t *testing.T) {
	transport := fullTransport()
	transport.FindSimilarHandler = nil

	err := router.NewAPIRouter(nil, transport).BuildRoutes(fiber.New())

	assert.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
}
