//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func repoNoTimeNow(m dsl.Matcher) {
	m.Match(`time.Now()`).
		Where(
			m.File().PkgPath.Matches(`internal/repositories`) &&
				!m.File().Name.Matches(`_test\.go$`),
		).
		Report("repositories take time from the injected clock")
}

func repoNoHandMadeSQL(m dsl.Matcher) {
	m.Match(`fmt.Sprintf($*_)`).
		Where(
			m.File().PkgPath.Matches(`internal/repositories`) &&
				m.File().Imports(`entgo.io/ent/dialect/sql`),
		).
		Report("build queries with the ent sql builder")
}

func noRawHTMLEscape(m dsl.Matcher) {
	m.Match(`html.EscapeString($_)`).
		Where(
			!m.File().PkgPath.Matches(`internal/sanitizer`) &&
				!m.File().PkgPath.Matches(`internal/server/errhandler`),
		).
		Report("use sanitizer.Sanitize for user text")
}
