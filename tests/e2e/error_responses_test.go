//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Error Responses", ginkgo.Ordered, func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	ginkgo.BeforeAll(func() {
		ctx, cancel = context.WithCancel(suiteCtx)
	})

	ginkgo.AfterAll(func() {
		cancel()
	})

	ginkgo.It("400 bad request, body is over the limit", func() {
		resp := submitMessage(ctx, "e2e", strings.Repeat("a", 100_000))
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring("Message is too long!"))
	})

	ginkgo.It("400 bad request, message is too long", func() {
		resp := submitMessage(ctx, "e2e", strings.Repeat("a", 501))
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring("Message is too long!"))
	})

	ginkgo.It("400 bad request, message is empty", func() {
		resp := submitMessage(ctx, "e2e", "")
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring("Username and message are required!"))
	})

	ginkgo.It("400 bad request, username is empty", func() {
		resp := submitMessage(ctx, "", "hello")
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring("Username and message are required!"))
	})

	ginkgo.It("404 page not found", func() {
		resp, err := chatClient.R().SetContext(ctx).Get("/no/such/page")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		printResponse(resp)
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusNotFound))
		gomega.Expect(resp.String()).Should(gomega.Equal("<h1>404 - Page not found</h1>"))
	})
})
