package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	chatUC "confluence-assistant/internal/chat/usecase"
	"confluence-assistant/internal/intent"
	"confluence-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db       *sql.DB
	resolver *intent.Resolver
	defaults chatUC.Defaults
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	Resolver *intent.Resolver
	Defaults chatUC.Defaults
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
		db:          cfg.DB,
		resolver:    cfg.Resolver,
		defaults:    cfg.Defaults,
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
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.resolver == nil {
		return errors.New("resolver is required")
	}
	return nil
}
