package errhandler

import (
	"fmt"
	"html"
)

// HTMLResponseBuilder renders the error page of the chat pages.
var HTMLResponseBuilder = func(code int, msg string, _ string) any {
	return fmt.Sprintf("<h1>%d - %s</h1>", code, html.EscapeString(msg))
}

type Response struct {
	Error Error `json:"error"`
}

type Error struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

// JSONResponseBuilder is for clients that are not browsers.
var JSONResponseBuilder = func(code int, msg string, details string) any {
	var d *string
	if details != "" {
		d = &details
	}
	return Response{
		Error: Error{
			Code:    code,
			Message: msg,
			Details: d,
		},
	}
}
