package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrMalformedDocument is returned by DecodeEvent for every rejection cause:
// a missing required field, a wrong-typed value, or an unknown category.
// Callers only ever get the binary outcome.
var ErrMalformedDocument = errors.New("malformed event document")

// DecodeEvent coerces one raw store document into an Event. Decoding is
// all-or-nothing: any required-field failure rejects the whole document,
// never producing a partially-filled Event. Optional fields read as absent
// when missing or wrong-typed and never cause rejection.
func DecodeEvent(doc Document, classifier Classifier) (*Event, error) {
	title, ok := stringField(doc, "title")
	if !ok {
		return nil, ErrMalformedDocument
	}
	desc, ok := stringField(doc, "desc")
	if !ok {
		return nil, ErrMalformedDocument
	}
	rawType, ok := stringField(doc, "type")
	if !ok {
		return nil, ErrMalformedDocument
	}
	category, ok := classifier.Classify(rawType)
	if !ok {
		return nil, ErrMalformedDocument
	}
	date, ok := dateField(doc, "date")
	if !ok {
		return nil, ErrMalformedDocument
	}
	contactName, ok := stringField(doc, "contactName")
	if !ok {
		return nil, ErrMalformedDocument
	}
	contactEmail, ok := stringField(doc, "contactEmail")
	if !ok {
		return nil, ErrMalformedDocument
	}
	beginPosting, ok := dateField(doc, "beginPosting")
	if !ok {
		return nil, ErrMalformedDocument
	}
	endPosting, ok := dateField(doc, "endPosting")
	if !ok {
		return nil, ErrMalformedDocument
	}

	// The store accepts endPosting < beginPosting and dates outside the
	// posting range; both are looseness of the source domain, not ours to fix.

	// An absent or wrong-typed tags field splits as the empty string, which
	// yields a single empty fragment. Kept from the original feed behavior.
	rawTags, _ := doc["tags"].(string)
	tags := strings.Split(rawTags, ";")

	return &Event{
		Title:         title,
		Description:   desc,
		Category:      category,
		Date:          date,
		Time:          optionalString(doc, "time"),
		Location:      optionalString(doc, "location"),
		ContactName:   contactName,
		ContactEmail:  contactEmail,
		BeginPosting:  beginPosting,
		EndPosting:    endPosting,
		ApplyDeadline: optionalDate(doc, "applyDeadline"),
		Tags:          tags,
	}, nil
}

func stringField(doc Document, key string) (string, bool) {
	s, ok := doc[key].(string)
	return s, ok
}

func dateField(doc Document, key string) (time.Time, bool) {
	t, ok := doc[key].(time.Time)
	if !ok {
		return time.Time{}, false
	}
	return truncateToDay(t), true
}

func optionalString(doc Document, key string) *string {
	if s, ok := doc[key].(string); ok {
		return &s
	}
	return nil
}

func optionalDate(doc Document, key string) *time.Time {
	if t, ok := doc[key].(time.Time); ok {
		day := truncateToDay(t)
		return &day
	}
	return nil
}

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
