package serve

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ttsserver/hander/midwire"
	"ttsserver/pkg/log"
)

type HttpServer struct {
	Echo *echo.Echo
	l    *log.Logger
}

func NewHttpServer(l *log.Logger) *HttpServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(midwire.Recover())
	e.Use(midwire.RequestLogger(l))
	e.Use(midwire.CORS())
	return &HttpServer{
		Echo: e,
		l:    l.WithModule("HttpServer"),
	}
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *HttpServer) Start(addr string) error {
	s.l.Info("listening", log.String("addr", addr))
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
