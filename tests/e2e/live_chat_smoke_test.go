//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	wsstream "github.com/zestagio/chat-relay/tests/e2e/ws-stream"
)

type liveMessage struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type livePage struct {
	stream *wsstream.Stream

	mu   sync.Mutex
	msgs []liveMessage
}

func openLivePage(ctx context.Context) *livePage {
	p := new(livePage)

	var err error
	p.stream, err = wsstream.New(wsstream.NewOptions(hubEndpoint, hubOrigin, p.handle))
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

	go func() {
		defer ginkgo.GinkgoRecover()
		err := p.stream.Run(ctx)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	}()
	gomega.Eventually(p.stream.Connected()).Should(gomega.BeClosed())

	return p
}

func (p *livePage) handle(_ context.Context, data []byte) error {
	var m liveMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("unmarshal frame: %v", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, m)
	return nil
}

func (p *livePage) Messages() []liveMessage {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]liveMessage, len(p.msgs))
	copy(result, p.msgs)
	return result
}

var _ = ginkgo.Describe("Live Chat Smoke", ginkgo.Ordered, func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc

		page1, page2 *livePage
	)

	ginkgo.BeforeAll(func() {
		ctx, cancel = context.WithCancel(suiteCtx)
		page1 = openLivePage(ctx)
		page2 = openLivePage(ctx)
	})

	ginkgo.AfterAll(func() {
		cancel()
	})

	ginkgo.It("pages are served", func() {
		for _, path := range []string{"/", "/message.html", "/static/style.css"} {
			resp, err := chatClient.R().SetContext(ctx).Get(path)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK), path)
		}
	})

	ginkgo.It("submitted message reaches every live page escaped", func() {
		username := "e2e-" + uuid.NewString()[:8]

		resp := submitMessage(ctx, username, "<b>hello</b>")
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.String()).Should(gomega.Equal("Message sent!"))

		for _, p := range []*livePage{page1, page2} {
			gomega.Eventually(p.Messages, 5*time.Second).Should(gomega.ContainElement(
				gomega.And(
					gomega.HaveField("Username", username),
					gomega.HaveField("Message", "&lt;b&gt;hello&lt;/b&gt;"),
				),
			))
		}
	})

	ginkgo.It("message of exactly 500 characters is accepted", func() {
		username := "e2e-" + uuid.NewString()[:8]
		body := strings.Repeat("x", 500)

		resp := submitMessage(ctx, username, body)
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))

		gomega.Eventually(page1.Messages, 5*time.Second).Should(gomega.ContainElement(
			gomega.HaveField("Message", body),
		))
	})
})
