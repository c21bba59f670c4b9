package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/config"
	"github.com/NeuralTrust/TrustTag/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustTag/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const MetricsPath = "/metrics"

type Server interface {
	Run() error
	Shutdown() error
}

type BaseServer struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Router     *fiber.App
	metricsApp *fiber.App
}

func NewBaseServer(config *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		AppName:               "TrustTag",
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             8 * 1024 * 1024,
		ReadTimeout:           60 * time.Second,
		// Tagging a large batch waits on the collaborators.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		Config: config,
		Logger: logger,
		Router: r,
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) *BaseServer {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			s.Logger.WithError(err).Error("failed to build routes")
		}
	}
	return s
}

func (s *BaseServer) setupMetricsEndpoint() {
	if !s.Config.Metrics.Enabled {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return
	}
	if s.metricsApp != nil {
		return
	}

	s.metricsApp = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.metricsApp.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(prometheus.Gatherer(), promhttp.HandlerOpts{}),
	)
	s.metricsApp.Get(MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})

	go func() {
		addr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
		if err := s.metricsApp.Listen(addr); err != nil {
			if !strings.Contains(err.Error(), "address already in use") {
				s.Logger.WithError(err).Error("failed to start metrics server")
			}
		}
	}()
}

func (s *BaseServer) shutdownMetrics() error {
	if s.metricsApp == nil {
		return nil
	}
	return s.metricsApp.Shutdown()
}
