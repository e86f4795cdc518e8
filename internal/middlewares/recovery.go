package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const recoveryStackSize = 4 << 10

// NewRecovery turns a handler panic into a 500 response and logs the stack.
func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:       recoveryStackSize,
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			lg.With(
				zap.Error(err),
				zap.String("method", eCtx.Request().Method),
				zap.String("path", eCtx.Request().URL.Path),
				zap.String("stack", string(stack)),
			).Error("panic recovered")
			return err
		},
	})
}
