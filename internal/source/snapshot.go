package source

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/noticeboard-dev/noticeboard/internal/domain"
)

// Load reads a JSON export of the remote document store and yields the raw
// documents the decoder expects. The store client hands typed timestamps to
// the decoder; the JSON export serializes those as RFC3339 strings, so any
// string value in that form is coerced back to time.Time here.
func Load(path string) ([]domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	docs := make([]domain.Document, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, coerceTimestamps(entry))
	}
	return docs, nil
}

func coerceTimestamps(entry map[string]any) domain.Document {
	doc := make(domain.Document, len(entry))
	for key, value := range entry {
		if s, ok := value.(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				doc[key] = t
				continue
			}
		}
		doc[key] = value
	}
	return doc
}
