package vocab

import (
	"strings"

	"github.com/noticeboard-dev/noticeboard/internal/domain"
)

// Classifier resolves raw category strings from store documents against a
// curated vocabulary. Matching ignores case; the canonical Category keeps
// the spelling the vocabulary was configured with.
type Classifier struct {
	categories map[string]domain.Category
}

func New(names []string) *Classifier {
	c := &Classifier{categories: make(map[string]domain.Category, len(names))}
	for _, name := range names {
		c.categories[strings.ToLower(name)] = domain.Category(name)
	}
	return c
}

func (c *Classifier) Classify(raw string) (domain.Category, bool) {
	cat, ok := c.categories[strings.ToLower(raw)]
	return cat, ok
}
