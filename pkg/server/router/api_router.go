package router

import (
	"errors"

	_ "github.com/NeuralTrust/TrustTag/docs"
	handlers "github.com/NeuralTrust/TrustTag/pkg/handlers/http"
	"github.com/NeuralTrust/TrustTag/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	RootPath          = "/"
	HealthPath        = "/health"
	VersionPath       = "/api/v1/version"
	TagAssetsPath     = "/tag-assets"
	FindSimilarPath   = "/find-similar"
	AnalyzeDesignPath = "/analyze-design"
	SwaggerPath       = "/swagger/*"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t == nil {
		return ErrInvalidHandlerTransport
	}
	for _, h := range []handlers.Handler{
		t.RootHandler, t.HealthHandler, t.VersionHandler,
		t.TagAssetsHandler, t.FindSimilarHandler, t.AnalyzeDesignHandler,
	} {
		if h == nil {
			return ErrInvalidHandlerTransport
		}
	}

	if r.middlewareTransport != nil {
		for _, mw := range r.middlewareTransport.GetMiddlewares() {
			router.Use(mw)
		}
	}

	router.Get(SwaggerPath, swagger.HandlerDefault)

	router.Get(RootPath, t.RootHandler.Handle)
	router.Get(HealthPath, t.HealthHandler.Handle)
	router.Get(VersionPath, t.VersionHandler.Handle)

	router.Post(TagAssetsPath, t.TagAssetsHandler.Handle)
	router.Post(FindSimilarPath, t.FindSimilarHandler.Handle)
	router.Post(AnalyzeDesignPath, t.AnalyzeDesignHandler.Handle)

	return nil
}
