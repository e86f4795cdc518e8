package logger

import (
	"crypto/tls"
	"net/http"

	"github.com/getsentry/sentry-go"
)

const envProduction = "prod"

// NewSentryClient creates a client for the zap sentry core.
// Certificate checks are skipped outside of production: stage sentry runs on a self-signed cert.
func NewSentryClient(dsn, env, version string) (*sentry.Client, error) {
	opts := sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "chat-relay@" + version,
		Environment:      env,
		AttachStacktrace: true,
	}

	if env != envProduction {
		opts.HTTPTransport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // non-prod solution
			},
		}
	}

	return sentry.NewClient(opts)
}
