package pipeline

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hostops-ai/hostops/internal/config"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "refund request",
			text: "Can I get a refund for my stay?",
			want: []string{"refund", "stay"},
		},
		{
			name: "checkout question",
			text: "What time is checkout?",
			want: []string{"what", "time", "checkout"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "stop words and short tokens only",
			text: "I can do it for you and the cat",
			want: []string{},
		},
		{
			name: "duplicates collapse to first appearance",
			text: "towels towels fresh towels please bring fresh towels",
			want: []string{"towels", "fresh", "please", "bring"},
		},
		{
			name: "cap at five keywords",
			text: "parking checkin wifi breakfast luggage towels heating",
			want: []string{"parking", "checkin", "wifi", "breakfast", "luggage"},
		},
		{
			name: "punctuation stripped before tokenizing",
			text: "Where's the pool? Near the garden!!",
			want: []string{"wheres", "pool", "near", "garden"},
		},
		{
			name: "case folded",
			text: "REFUND Refund refund",
			want: []string{"refund"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, config.MaxKeywords)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsProperties(t *testing.T) {
	inputs := []string{
		"Can I get a refund for my stay?",
		"The the the towels towels are ARE dirty dirty and smelly",
		"wifi password parking checkin checkout breakfast dinner luggage",
		"!!! ??? ...",
		strings.Repeat("unique"+strings.Repeat("x", 3)+" ", 50),
	}

	for _, text := range inputs {
		got := ExtractKeywords(text, config.MaxKeywords)

		if len(got) > config.MaxKeywords {
			t.Errorf("ExtractKeywords(%q) returned %d keywords, max is %d", text, len(got), config.MaxKeywords)
		}

		seen := map[string]bool{}
		for _, kw := range got {
			if seen[kw] {
				t.Errorf("ExtractKeywords(%q) returned duplicate %q", text, kw)
			}
			seen[kw] = true

			if _, stop := stopWords[kw]; stop {
				t.Errorf("ExtractKeywords(%q) returned stop-word %q", text, kw)
			}
			if len([]rune(kw)) < config.MinKeywordLen {
				t.Errorf("ExtractKeywords(%q) returned short token %q", text, kw)
			}
		}
	}
}
