package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips HTML markup from s and collapses whitespace. Input that
// cannot be parsed is returned trimmed.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
