package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sales-coach-assistant/config"
	"sales-coach-assistant/internal/assistant"
	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	assistantUC assistant.UseCase
	rubricUC    rubric.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	AssistantUC assistant.UseCase
	RubricUC    rubric.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		assistantUC: cfg.AssistantUC,
		rubricUC:    cfg.RubricUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	if srv.rubricUC == nil {
		return errors.New("rubric usecase is required")
	}
	return nil
}
