package domain

import (
	"cmp"
	"strings"
	"time"
)

// Document is the raw key-value shape produced by the remote document store.
// Values are untyped; DecodeEvent owns all coercion.
type Document map[string]any

// Category classifies an event (e.g. event, announcement, meeting). The
// vocabulary is curated outside this module; see the vocab package.
type Category string

// Classifier coerces the raw category string stored in a document.
// The second return is false when the string names no known category.
type Classifier interface {
	Classify(raw string) (Category, bool)
}

// Event is one calendar/announcement item as shown in the app feed.
// Instances come out of DecodeEvent fully populated and are never mutated.
type Event struct {
	Title         string
	Description   string // may embed <a href=...> markup, rendered by the render package
	Category      Category
	Date          time.Time // first day of occurrence, day precision
	Time          *string   // free-form, descriptive only
	Location      *string
	ContactName   string // internal use, never rendered
	ContactEmail  string // internal use, never rendered
	BeginPosting  time.Time // first day visible in default listings
	EndPosting    time.Time // last day visible
	ApplyDeadline *time.Time
	Tags          []string // never nil; see DecodeEvent for the split rule
}

const displayLayout = "Mon, Jan 2, 2006"

// DisplayDate renders the event date for list rows, e.g. "Wed, Jun 14, 2023".
func (e *Event) DisplayDate() string {
	return e.Date.Format(displayLayout)
}

// DisplayDeadline renders the application deadline in the same form as
// DisplayDate. ok is false when the event has no deadline.
func (e *Event) DisplayDeadline() (deadline string, ok bool) {
	if e.ApplyDeadline == nil {
		return "", false
	}
	return e.ApplyDeadline.Format(displayLayout), true
}

// ContainsString reports whether query occurs in the title or description,
// case-insensitively. An empty query matches every event.
func (e *Event) ContainsString(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}

// MatchesDate reports whether day falls on the same calendar day as the
// event date. Time-of-day on either side is ignored.
func (e *Event) MatchesDate(day time.Time) bool {
	return dayOrdinal(day) == dayOrdinal(e.Date)
}

// InPostingRange reports whether day lies in [BeginPosting, EndPosting],
// inclusive on both ends, at day precision. Independent of the event date.
func (e *Event) InPostingRange(day time.Time) bool {
	o := dayOrdinal(day)
	return o >= dayOrdinal(e.BeginPosting) && o <= dayOrdinal(e.EndPosting)
}

// CompareByDate orders two events by their date alone, ascending. Equal
// dates compare as 0; tie-breaking is left to the caller's sort.
func CompareByDate(a, b *Event) int {
	return cmp.Compare(dayOrdinal(a.Date), dayOrdinal(b.Date))
}

func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
