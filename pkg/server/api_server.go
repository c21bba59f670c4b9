package server

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustTag/pkg/config"
	"github.com/NeuralTrust/TrustTag/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	s := &APIServer{BaseServer: NewBaseServer(di.Config, di.Logger)}
	s.WithRouters(di.Routers...)
	return s
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting tagging API server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}
