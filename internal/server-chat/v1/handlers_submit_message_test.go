package chatv1_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang/mock/gomock"

	internalerrors "github.com/zestagio/chat-relay/internal/errors"
	chatv1 "github.com/zestagio/chat-relay/internal/server-chat/v1"
	"github.com/zestagio/chat-relay/internal/types"
	submitmessage "github.com/zestagio/chat-relay/internal/usecases/submit-message"
)

func (s *HandlersSuite) TestSubmitMessage_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx(url.Values{"username": {"bob"}, "message": {"hi <b>"}})
	s.submitMessage.EXPECT().Handle(gomock.Any(), submitmessage.Request{
		Sender: "bob",
		Body:   "hi <b>",
	}).Return(submitmessage.Response{
		MessageID: types.NewMessageID(),
		CreatedAt: time.Now(),
	}, nil)

	// Action.
	err := s.handlers.PostSubmitMessage(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.Equal(chatv1.MsgSent, resp.Body.String())
}

func (s *HandlersSuite) TestSubmitMessage_EmptyForm() {
	// Arrange.
	_, eCtx := s.newEchoCtx(url.Values{})
	s.submitMessage.EXPECT().Handle(gomock.Any(), submitmessage.Request{}).
		Return(submitmessage.Response{}, fmt.Errorf("%w: %w", submitmessage.ErrInvalidRequest, submitmessage.ErrMissingField))

	// Action.
	err := s.handlers.PostSubmitMessage(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	_, msg, _ := internalerrors.ProcessServerError(err)
	s.Equal(chatv1.MsgFieldsRequired, msg)
}

func (s *HandlersSuite) TestSubmitMessage_UseCaseErrors() {
	cases := []struct {
		name     string
		ucErr    error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "too long",
			ucErr:    fmt.Errorf("%w: %w", submitmessage.ErrInvalidRequest, submitmessage.ErrMessageTooLong),
			wantCode: http.StatusBadRequest,
			wantMsg:  chatv1.MsgTooLong,
		},
		{
			name:     "missing field",
			ucErr:    fmt.Errorf("%w: %w", submitmessage.ErrInvalidRequest, submitmessage.ErrMissingField),
			wantCode: http.StatusBadRequest,
			wantMsg:  chatv1.MsgFieldsRequired,
		},
		{
			name:     "other invalid request",
			ucErr:    submitmessage.ErrInvalidRequest,
			wantCode: http.StatusBadRequest,
			wantMsg:  chatv1.MsgInvalidRequest,
		},
		{
			name:     "not saved",
			ucErr:    fmt.Errorf("%w: %v", submitmessage.ErrMessageNotSaved, errors.New("db is down")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  chatv1.MsgMessageNotSaved,
		},
		{
			name:     "context cancelled",
			ucErr:    context.Canceled,
			wantCode: http.StatusInternalServerError,
			wantMsg:  chatv1.MsgMessageNotSaved,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			// Arrange.
			_, eCtx := s.newEchoCtx(url.Values{"username": {"bob"}, "message": {"hello"}})
			s.submitMessage.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(submitmessage.Response{}, tc.ucErr)

			// Action.
			err := s.handlers.PostSubmitMessage(eCtx)

			// Assert.
			s.Require().Error(err)
			code, msg, _ := internalerrors.ProcessServerError(err)
			s.Equal(tc.wantCode, code)
			s.Equal(tc.wantMsg, msg)
			s.ErrorIs(err, tc.ucErr)
		})
	}
}
