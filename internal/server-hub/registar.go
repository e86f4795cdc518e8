package serverhub

import (
	"github.com/labstack/echo/v4"
)

func NewHandlersRegistrar(wsHandler echo.HandlerFunc) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.GET("/", wsHandler)
	}
}
