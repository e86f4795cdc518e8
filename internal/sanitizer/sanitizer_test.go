package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/chat-relay/internal/sanitizer"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "plain text",
			in:   "hello, world",
			out:  "hello, world",
		},
		{
			name: "script tag",
			in:   "<script>alert(1)</script>",
			out:  "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name: "quotes and ampersand",
			in:   `Tom & "Jerry" 'n' friends`,
			out:  "Tom &amp; &#34;Jerry&#34; &#39;n&#39; friends",
		},
		{
			name: "control characters",
			in:   "a\x00b\x07c\x1bd",
			out:  "abcd",
		},
		{
			name: "newlines and tabs kept",
			in:   "line1\r\n\tline2",
			out:  "line1\r\n\tline2",
		},
		{
			name: "already escaped",
			in:   "&lt;b&gt;",
			out:  "&lt;b&gt;",
		},
		{
			name: "unicode",
			in:   "привет 👋",
			out:  "привет 👋",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "control only",
			in:   "\x00\x01\x02",
			out:  "",
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, sanitizer.Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	for _, in := range []string{
		"<script>alert('x')</script>",
		"a && b < c > d",
		`"quoted" & 'single'`,
		"&amp;lt;",
		"&#60;img src=x onerror=alert(1)&#62;",
		"plain",
		"\x00<\x01>",
	} {
		once := sanitizer.Sanitize(in)
		twice := sanitizer.Sanitize(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestSanitize_NoRawMarkup(t *testing.T) {
	for _, in := range []string{
		"<b>bold</b>",
		"1 < 2 > 0",
		"&lt;already&gt; <mixed>",
		"<<<>>>",
	} {
		out := sanitizer.Sanitize(in)
		assert.False(t, strings.ContainsAny(out, "<>"), "output %q", out)
	}
}
