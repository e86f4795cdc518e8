package serverchat_test

import (
	"net/http"
	"strings"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-resty/resty/v2"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	chatv1 "github.com/zestagio/chat-relay/internal/server-chat/v1"
	relaypublisher "github.com/zestagio/chat-relay/internal/services/relay-publisher"
	"github.com/zestagio/chat-relay/internal/store"
	"github.com/zestagio/chat-relay/internal/testingh"
)

var _ = ginkgo.Describe("Submit Message Smoke", ginkgo.Ordered, func() {
	ginkgo.It("accepts a message and relays it escaped", func() {
		// Action.
		resp, err := apiClient.R().
			SetContext(suiteCtx).
			SetFormData(map[string]string{
				"username": "alice",
				"message":  "<script>alert(1)</script>",
			}).
			Post("/")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.String()).Should(gomega.Equal(chatv1.MsgSent))

		gomega.Eventually(hub.Bodies).Should(gomega.ContainElement(
			"&lt;script&gt;alert(1)&lt;/script&gt;",
		))
		gomega.Expect(countMessages()).Should(gomega.Equal(1))
	})

	ginkgo.It("rejects a message longer than 500 characters", func() {
		// Action.
		resp, err := apiClient.R().
			SetContext(suiteCtx).
			SetFormData(map[string]string{
				"username": "alice",
				"message":  strings.Repeat("a", 501),
			}).
			Post("/")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring(chatv1.MsgTooLong))
		gomega.Expect(countMessages()).Should(gomega.Equal(1))
	})

	ginkgo.It("accepts a message of exactly 500 characters", func() {
		resp, err := apiClient.R().
			SetContext(suiteCtx).
			SetFormData(map[string]string{
				"username": "alice",
				"message":  strings.Repeat("я", 500),
			}).
			Post("/")

		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(countMessages()).Should(gomega.Equal(2))
	})

	ginkgo.DescribeTable("rejects a message without required fields",
		func(form map[string]string) {
			resp, err := apiClient.R().
				SetContext(suiteCtx).
				SetFormData(form).
				Post("/")

			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(resp.String()).Should(gomega.ContainSubstring(chatv1.MsgFieldsRequired))
			gomega.Expect(countMessages()).Should(gomega.Equal(2))
		},
		ginkgo.Entry("empty form", map[string]string{}),
		ginkgo.Entry("no username", map[string]string{"message": "hi"}),
		ginkgo.Entry("no message", map[string]string{"username": "alice"}),
	)

	ginkgo.It("rejects a form larger than the body limit as a too long message", func() {
		resp, err := apiClient.R().
			SetContext(suiteCtx).
			SetFormData(map[string]string{
				"username": "alice",
				"message":  strings.Repeat("a", 13_000),
			}).
			Post("/")

		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring(chatv1.MsgTooLong))
		gomega.Expect(countMessages()).Should(gomega.Equal(2))
	})

	ginkgo.It("stores and relays concurrent submissions independently", func() {
		bodies := []string{"concurrent one", "concurrent two"}

		// Action.
		var wg sync.WaitGroup
		codes := make([]int, len(bodies))
		for i, body := range bodies {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer ginkgo.GinkgoRecover()

				resp, err := apiClient.R().
					SetContext(suiteCtx).
					SetFormData(map[string]string{"username": "bob", "message": body}).
					Post("/")
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
				codes[i] = resp.StatusCode()
			}()
		}
		wg.Wait()

		// Assert.
		gomega.Expect(codes).Should(gomega.HaveEach(http.StatusOK))
		gomega.Expect(countMessages()).Should(gomega.Equal(4))

		createdAt := storedCreatedAt(entsql.In(store.MessagesFieldBody, "concurrent one", "concurrent two"))
		gomega.Expect(createdAt).Should(gomega.HaveLen(2))
		gomega.Expect(createdAt[0].Equal(createdAt[1])).Should(gomega.BeFalse())

		gomega.Eventually(hub.Bodies).Should(gomega.ContainElements(bodies))
	})

	ginkgo.It("serves the pages", func() {
		for _, path := range []string{"/", "/message.html"} {
			resp, err := apiClient.R().SetContext(suiteCtx).Get(path)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
			gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.HavePrefix("text/html"))
		}
	})
})

func storedCreatedAt(p *entsql.Predicate) []time.Time {
	query, args := entsql.Dialect(db.Dialect()).
		Select(store.MessagesFieldCreatedAt).
		From(entsql.Table(store.MessagesTableName)).
		Where(p).
		Query()

	rows := &entsql.Rows{}
	gomega.Expect(db.Driver().Query(suiteCtx, query, args, rows)).Should(gomega.Succeed())
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var t time.Time
		gomega.Expect(rows.Scan(&t)).Should(gomega.Succeed())
		result = append(result, t)
	}
	gomega.Expect(rows.Err()).ShouldNot(gomega.HaveOccurred())
	return result
}

func countMessages() int {
	query, args := entsql.Dialect(db.Dialect()).
		Select(entsql.Count("*")).
		From(entsql.Table(store.MessagesTableName)).
		Query()

	rows := &entsql.Rows{}
	gomega.Expect(db.Driver().Query(suiteCtx, query, args, rows)).Should(gomega.Succeed())
	defer rows.Close()

	var n int
	gomega.Expect(rows.Next()).Should(gomega.BeTrue())
	gomega.Expect(rows.Scan(&n)).Should(gomega.Succeed())
	return n
}

var _ = ginkgo.Describe("Unreachable Relay Smoke", ginkgo.Ordered, func() {
	var liveClient, downClient *resty.Client

	ginkgo.BeforeAll(func() {
		liveStore := testingh.NewSQLiteStore(suiteCtx, ginkgo.GinkgoT())
		ginkgo.DeferCleanup(liveStore.Close)
		liveClient = newChatServer(liveStore, new(hubRecorder))

		downStore := testingh.NewSQLiteStore(suiteCtx, ginkgo.GinkgoT())
		ginkgo.DeferCleanup(downStore.Close)

		// Nothing listens there.
		ws, err := relaypublisher.NewWebsocketTransport(relaypublisher.NewWebsocketOptions("ws://127.0.0.1:1/"))
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		downClient = newChatServer(downStore, ws)
	})

	ginkgo.DescribeTable("answers like a server with a live relay",
		func(form map[string]string) {
			post := func(c *resty.Client) *resty.Response {
				resp, err := c.R().SetContext(suiteCtx).SetFormData(form).Post("/")
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
				return resp
			}

			live, down := post(liveClient), post(downClient)
			gomega.Expect(down.StatusCode()).Should(gomega.Equal(live.StatusCode()))
			gomega.Expect(down.String()).Should(gomega.Equal(live.String()))
		},
		ginkgo.Entry("valid message", map[string]string{"username": "bob", "message": "hi"}),
		ginkgo.Entry("too long message", map[string]string{"username": "bob", "message": strings.Repeat("a", 501)}),
	)
})
