package feed

import (
	"slices"
	"time"

	"github.com/noticeboard-dev/noticeboard/internal/domain"
	"github.com/noticeboard-dev/noticeboard/internal/logger"
)

// Feed holds the decoded events backing the app's list views. Events stay
// immutable; every accessor returns a fresh slice.
type Feed struct {
	events []domain.Event
}

// Build decodes a batch of raw store documents. Malformed documents are
// dropped without distinction of cause; the drop count is logged here
// because the decoder itself stays silent about rejections.
func Build(docs []domain.Document, classifier domain.Classifier) *Feed {
	f := &Feed{events: make([]domain.Event, 0, len(docs))}
	dropped := 0
	for _, doc := range docs {
		ev, err := domain.DecodeEvent(doc, classifier)
		if err != nil {
			dropped++
			continue
		}
		f.events = append(f.events, *ev)
	}
	if dropped > 0 {
		logger.Component("feed").Warn("dropped malformed event documents",
			"dropped", dropped,
			"kept", len(f.events))
	}
	return f
}

func (f *Feed) Len() int { return len(f.events) }

// Events returns every event in date order.
func (f *Feed) Events() []domain.Event {
	return sortByDate(slices.Clone(f.events))
}

// Search returns events whose title or description contains query,
// case-insensitively.
func (f *Feed) Search(query string) []domain.Event {
	return f.filter(func(e *domain.Event) bool { return e.ContainsString(query) })
}

// On returns events occurring on the given calendar day.
func (f *Feed) On(day time.Time) []domain.Event {
	return f.filter(func(e *domain.Event) bool { return e.MatchesDate(day) })
}

// VisibleOn returns events whose posting range covers the given day, in
// date order. This is the default listing.
func (f *Feed) VisibleOn(day time.Time) []domain.Event {
	return sortByDate(f.filter(func(e *domain.Event) bool { return e.InPostingRange(day) }))
}

// WithCategory returns events of the given category.
func (f *Feed) WithCategory(cat domain.Category) []domain.Event {
	return f.filter(func(e *domain.Event) bool { return e.Category == cat })
}

// WithTag returns events carrying the given tag. Tags match exactly; the
// vocabulary is curated upstream.
func (f *Feed) WithTag(tag string) []domain.Event {
	return f.filter(func(e *domain.Event) bool { return slices.Contains(e.Tags, tag) })
}

func (f *Feed) filter(keep func(*domain.Event) bool) []domain.Event {
	out := []domain.Event{}
	for i := range f.events {
		if keep(&f.events[i]) {
			out = append(out, f.events[i])
		}
	}
	return out
}

func sortByDate(events []domain.Event) []domain.Event {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return domain.CompareByDate(&a, &b)
	})
	return events
}
