package chatv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/chat-relay/internal/errors"
	submitmessage "github.com/zestagio/chat-relay/internal/usecases/submit-message"
)

const (
	MsgSent            = "Message sent!"
	MsgTooLong         = "Message is too long!"
	MsgFieldsRequired  = "Username and message are required!"
	MsgInvalidRequest  = "Invalid request"
	MsgMessageNotSaved = "Message was not sent, try again later"
)

type SubmitMessageForm struct {
	Username string `form:"username"`
	Message  string `form:"message"`
}

func (h Handlers) PostSubmitMessage(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var form SubmitMessageForm
	if err := eCtx.Bind(&form); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, MsgInvalidRequest, err)
	}

	result, err := h.submitMessage.Handle(ctx, submitmessage.Request{
		Sender: form.Username,
		Body:   form.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitmessage.ErrMessageTooLong):
			return internalerrors.NewServerError(http.StatusBadRequest, MsgTooLong, err)
		case errors.Is(err, submitmessage.ErrMissingField):
			return internalerrors.NewServerError(http.StatusBadRequest, MsgFieldsRequired, err)
		case errors.Is(err, submitmessage.ErrInvalidRequest):
			return internalerrors.NewServerError(http.StatusBadRequest, MsgInvalidRequest, err)
		}
		return internalerrors.NewServerError(http.StatusInternalServerError, MsgMessageNotSaved, err)
	}

	h.logger.Debug("message accepted",
		zap.Stringer("msg_id", result.MessageID),
		zap.Time("created_at", result.CreatedAt))

	return eCtx.HTML(http.StatusOK, MsgSent)
}
