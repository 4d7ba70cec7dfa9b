package V1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "ttsserver/docs"
	"ttsserver/serve"
)

type HelloHander struct {
}

func NewHelloHander(s *serve.HttpServer) *HelloHander {
	s.Echo.GET("/", Index)
	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)
	return &HelloHander{}
}

// Index serves the browser client.
func Index(c echo.Context) error {
	return c.HTML(http.StatusOK, index)
}
