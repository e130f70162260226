package mail

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText extracts readable text from an HTML email body, used when
// a webhook payload carries no plain-text part.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html body: %w", err)
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
