package normalize

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// tagPattern matches a single-braced section tag: {#tag}, {/tag} or {^tag}.
// The lookbehind and lookahead keep already-double-braced tags ({{#tag}})
// from being escalated again.
var tagPattern = regexp2.MustCompile(`(?<!\{)\{([#/^])\s*([A-Za-z0-9_.-]+)\s*\}(?!\})`, regexp2.None)

// Tag is one located section tag, with whitespace around the name stripped.
type Tag struct {
	Operator string
	Name     string
}

func (t Tag) String() string {
	return "{{" + t.Operator + t.Name + "}}"
}

// Rewrite replaces every single-braced section tag in text with its
// double-braced form and returns the rewritten text together with the number
// of replacements. Text without matches is returned unchanged.
func Rewrite(text string) (string, int) {
	match, err := tagPattern.FindStringMatch(text)
	if err != nil || match == nil {
		return text, 0
	}

	// regexp2 capture indices count runes, not bytes.
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text) + 16)

	last := 0
	count := 0
	for match != nil {
		out.WriteString(string(runes[last:match.Index]))
		tag := Tag{
			Operator: match.GroupByNumber(1).String(),
			Name:     match.GroupByNumber(2).String(),
		}
		out.WriteString(tag.String())
		count++

		last = match.Index + match.Length
		match, err = tagPattern.FindNextMatch(match)
		if err != nil {
			break
		}
	}
	out.WriteString(string(runes[last:]))

	return out.String(), count
}

// FindTags returns the section tags Rewrite would replace, in document order.
func FindTags(text string) []Tag {
	var tags []Tag
	match, err := tagPattern.FindStringMatch(text)
	for err == nil && match != nil {
		tags = append(tags, Tag{
			Operator: match.GroupByNumber(1).String(),
			Name:     match.GroupByNumber(2).String(),
		})
		match, err = tagPattern.FindNextMatch(match)
	}
	return tags
}
