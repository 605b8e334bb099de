package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// Plaintext strips the markup from an XML part and returns its text content,
// the way a document author sees it. The tokenizer is lenient, so malformed
// markup degrades to partial text instead of an error.
func Plaintext(markup string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}
