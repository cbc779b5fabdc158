package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier map[string]Category

func (s stubClassifier) Classify(raw string) (Category, bool) {
	cat, ok := s[raw]
	return cat, ok
}

var testClassifier = stubClassifier{
	"event":        "Event",
	"announcement": "Announcement",
}

func validDoc() Document {
	return Document{
		"title":         "Spring Fair",
		"desc":          "All welcome",
		"type":          "event",
		"date":          time.Date(2023, 6, 14, 15, 30, 0, 0, time.UTC),
		"time":          "3:30 PM",
		"location":      "Main hall",
		"contactName":   "Sam Lee",
		"contactEmail":  "sam@example.org",
		"beginPosting":  time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC),
		"endPosting":    time.Date(2023, 6, 14, 23, 0, 0, 0, time.UTC),
		"applyDeadline": time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
		"tags":          "music;food;family",
	}
}

func TestDecodeEvent_Valid(t *testing.T) {
	ev, err := DecodeEvent(validDoc(), testClassifier)
	require.NoError(t, err)

	assert.Equal(t, "Spring Fair", ev.Title)
	assert.Equal(t, "All welcome", ev.Description)
	assert.Equal(t, Category("Event"), ev.Category)
	assert.Equal(t, "Sam Lee", ev.ContactName)
	assert.Equal(t, "sam@example.org", ev.ContactEmail)

	// Timestamps are truncated to calendar days on decode.
	assert.Equal(t, time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), ev.Date)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), ev.BeginPosting)
	assert.Equal(t, time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), ev.EndPosting)
	require.NotNil(t, ev.ApplyDeadline)
	assert.Equal(t, time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC), *ev.ApplyDeadline)

	require.NotNil(t, ev.Time)
	assert.Equal(t, "3:30 PM", *ev.Time)
	require.NotNil(t, ev.Location)
	assert.Equal(t, "Main hall", *ev.Location)

	assert.Equal(t, []string{"music", "food", "family"}, ev.Tags)
}

func TestDecodeEvent_MissingRequiredField(t *testing.T) {
	required := []string{
		"title", "desc", "type", "date",
		"contactName", "contactEmail", "beginPosting", "endPosting",
	}
	for _, key := range required {
		t.Run("missing "+key, func(t *testing.T) {
			doc := validDoc()
			delete(doc, key)

			ev, err := DecodeEvent(doc, testClassifier)
			assert.Nil(t, ev)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestDecodeEvent_WrongTypedRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"title is a number", "title", 42},
		{"desc is a bool", "desc", true},
		{"type is a number", "type", 7},
		{"date is a string", "date", "2023-06-14"},
		{"contactName is nil", "contactName", nil},
		{"contactEmail is a number", "contactEmail", 3.14},
		{"beginPosting is a string", "beginPosting", "2023-06-01"},
		{"endPosting is an int", "endPosting", 1686700800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			doc[tt.key] = tt.value

			ev, err := DecodeEvent(doc, testClassifier)
			assert.Nil(t, ev)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestDecodeEvent_UnknownCategory(t *testing.T) {
	doc := validDoc()
	doc["type"] = "potluck"

	ev, err := DecodeEvent(doc, testClassifier)
	assert.Nil(t, ev)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDecodeEvent_OptionalFields(t *testing.T) {
	t.Run("absent optionals never reject", func(t *testing.T) {
		doc := validDoc()
		delete(doc, "time")
		delete(doc, "location")
		delete(doc, "applyDeadline")

		ev, err := DecodeEvent(doc, testClassifier)
		require.NoError(t, err)
		assert.Nil(t, ev.Time)
		assert.Nil(t, ev.Location)
		assert.Nil(t, ev.ApplyDeadline)
	})

	t.Run("wrong-typed optionals read as absent", func(t *testing.T) {
		doc := validDoc()
		doc["time"] = 1930
		doc["location"] = []string{"Main hall"}
		doc["applyDeadline"] = "2023-06-10"

		ev, err := DecodeEvent(doc, testClassifier)
		require.NoError(t, err)
		assert.Nil(t, ev.Time)
		assert.Nil(t, ev.Location)
		assert.Nil(t, ev.ApplyDeadline)
	})
}

func TestDecodeEvent_Tags(t *testing.T) {
	tests := []struct {
		name string
		set  func(Document)
		want []string
	}{
		{
			name: "semicolon-delimited list",
			set:  func(d Document) { d["tags"] = "a;b;c" },
			want: []string{"a", "b", "c"},
		},
		{
			// Splitting the empty string keeps one empty fragment. Kept
			// from the original feed behavior.
			name: "absent field",
			set:  func(d Document) { delete(d, "tags") },
			want: []string{""},
		},
		{
			name: "wrong-typed field reads as absent",
			set:  func(d Document) { d["tags"] = 99 },
			want: []string{""},
		},
		{
			name: "empty fragments survive",
			set:  func(d Document) { d["tags"] = "a;;b" },
			want: []string{"a", "", "b"},
		},
		{
			name: "no trimming",
			set:  func(d Document) { d["tags"] = " a; b" },
			want: []string{" a", " b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.set(doc)

			ev, err := DecodeEvent(doc, testClassifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.Tags)
		})
	}
}
