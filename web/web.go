// Package web holds the pages and static assets served by the chat server.
package web

import "embed"

//go:embed pages static
var FS embed.FS

const (
	IndexPage   = "pages/index.html"
	MessagePage = "pages/message.html"
	StaticDir   = "static"
)
