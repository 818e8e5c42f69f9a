package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginlib "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice/internal/config"
	"backoffice/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

type Server struct {
	http *http.Server
	log  logger.Logger
}

// NewEngine returns a gin engine with recovery, CORS, request ids and access
// logging installed. Extra middleware runs after those.
func NewEngine(cfg config.ServerConfig, log logger.Logger, extra ...ginlib.HandlerFunc) *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(RequestID())
	r.Use(AccessLog(log))
	r.Use(extra...)
	return r
}

// RequestID reuses the caller's X-Request-ID or mints one, and stores it
// in the request context for logger.WithContext.
func RequestID() ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func AccessLog(log logger.Logger) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		start := time.Now()
		c.Next()

		log.WithContext(c.Request.Context()).Info("http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine, log logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.http.Handler == nil {
		return fmt.Errorf("gin engine is nil")
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logger.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
