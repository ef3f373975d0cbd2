package fields

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// isPlainText reports whether s survives the strict policy unchanged once the
// policy's entity escaping is undone.
func isPlainText(s string) bool {
	return html.UnescapeString(plainTextPolicy().Sanitize(s)) == s
}

func plainTextPolicy() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return plainPolicy
}
