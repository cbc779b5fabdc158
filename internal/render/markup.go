package render

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/noticeboard-dev/noticeboard/internal/domain"
)

// Descriptions may carry simple <a href=...>text</a> markup from the
// submission form. Everything else is stripped before display.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	return p
}

// Description returns the event description as HTML safe to hand to the
// app's rich-text widget. The stored event is never modified.
func Description(e *domain.Event) string {
	return policy.Sanitize(e.Description)
}
