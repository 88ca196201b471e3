package form

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeLocations keeps the location names that are plain text, byte for
// byte, since they are posted back to the prediction service verbatim. Names
// carrying markup, or blank names, are dropped.
func sanitizeLocations(names []string) []string {
	policy := textSanitizer()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		// The policy re-escapes text, so compare decoded forms: equal means
		// nothing but text survived and nothing was removed.
		if html.UnescapeString(policy.Sanitize(name)) != html.UnescapeString(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
