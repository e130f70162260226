package ai

import "strings"

// DefaultEscalationKeywords applies when a workspace has no configured
// list.
var DefaultEscalationKeywords = []string{
	"refund",
	"compensation",
	"discount",
	"injury",
	"safety",
	"police",
	"legal",
	"lawsuit",
	"chargeback",
}

// IsEscalated reports whether any keyword occurs in the text,
// case-insensitively.
func IsEscalated(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
