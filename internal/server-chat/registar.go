package serverchat

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	echomdlwr "github.com/labstack/echo/v4/middleware"
	oapimdlwr "github.com/oapi-codegen/echo-middleware"

	internalerrors "github.com/zestagio/chat-relay/internal/errors"
	chatv1 "github.com/zestagio/chat-relay/internal/server-chat/v1"
	"github.com/zestagio/chat-relay/web"
)

const (
	MessagePagePath = "/message.html"
	StaticPrefix    = "/static"

	msgPageNotFound = "Page not found"

	bodyLimit = "12KB" // ~ 500 characters * 4 bytes * escaping headroom.
)

func NewHandlersRegistrar(v1Swagger *openapi3.T, v1Handlers chatv1.ServerInterface) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.POST("/", v1Handlers.PostSubmitMessage,
			bodyTooLargeAsTooLong,
			echomdlwr.BodyLimit(bodyLimit),
			oapimdlwr.OapiRequestValidatorWithOptions(v1Swagger, &oapimdlwr.Options{
				Options: openapi3filter.Options{
					ExcludeRequestBody:  false,
					ExcludeResponseBody: true,
					AuthenticationFunc:  openapi3filter.NoopAuthenticationFunc,
				},
			}),
		)

		gzip := echomdlwr.Gzip()
		e.FileFS("/", web.IndexPage, web.FS, gzip)
		e.FileFS(MessagePagePath, web.MessagePage, web.FS, gzip)
		e.Group(StaticPrefix, gzip).StaticFS("/", echo.MustSubFS(web.FS, web.StaticDir))

		e.RouteNotFound("/*", func(_ echo.Context) error {
			return internalerrors.NewServerError(http.StatusNotFound, msgPageNotFound, nil)
		})
	}
}

// bodyTooLargeAsTooLong answers an oversized form the same way as an overlong message.
// The limit is hit either on Content-Length or while the body is being read.
func bodyTooLargeAsTooLong(next echo.HandlerFunc) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		err := next(eCtx)
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return internalerrors.NewServerError(http.StatusBadRequest, chatv1.MsgTooLong, err)
		}
		return err
	}
}
