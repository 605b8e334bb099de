package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite_SectionPair(t *testing.T) {
	out, count := Rewrite("Hello {#name} world {/name}")
	assert.Equal(t, "Hello {{#name}} world {{/name}}", out)
	assert.Equal(t, 2, count)
}

func TestRewrite_InvertedSection(t *testing.T) {
	out, count := Rewrite("{^flag}")
	assert.Equal(t, "{{^flag}}", out)
	assert.Equal(t, 1, count)
}

func TestRewrite_AlreadyNormalized(t *testing.T) {
	out, count := Rewrite("{{#already}}")
	assert.Equal(t, "{{#already}}", out)
	assert.Equal(t, 0, count)
}

func TestRewrite_TripleBraces(t *testing.T) {
	out, count := Rewrite("{{{#tag}}}")
	assert.Equal(t, "{{{#tag}}}", out)
	assert.Equal(t, 0, count)
}

func TestRewrite_UnbalancedBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"extra opening brace", "{{#tag}"},
		{"extra closing brace", "{#tag}}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, count := Rewrite(tc.input)
			assert.Equal(t, tc.input, out)
			assert.Equal(t, 0, count)
		})
	}
}

func TestRewrite_NoTags(t *testing.T) {
	input := "plain text with {interpolation} and {no operator}"
	out, count := Rewrite(input)
	assert.Equal(t, input, out)
	assert.Equal(t, 0, count)
}

func TestRewrite_MalformedTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"space inside name", "{#foo bar}"},
		{"missing closing brace", "{#foo"},
		{"invalid character", "{#foo$}"},
		{"empty name", "{#}"},
		{"operator only whitespace", "{# }"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, count := Rewrite(tc.input)
			assert.Equal(t, tc.input, out)
			assert.Equal(t, 0, count)
		})
	}
}

func TestRewrite_WhitespaceAroundName(t *testing.T) {
	out, count := Rewrite("{# name }")
	assert.Equal(t, "{{#name}}", out)
	assert.Equal(t, 1, count)
}

func TestRewrite_NameCharset(t *testing.T) {
	out, count := Rewrite("{#user.name} {/list-items} {^is_empty}")
	assert.Equal(t, "{{#user.name}} {{/list-items}} {{^is_empty}}", out)
	assert.Equal(t, 3, count)
}

func TestRewrite_AdjacentTags(t *testing.T) {
	out, count := Rewrite("{#a}{/a}")
	assert.Equal(t, "{{#a}}{{/a}}", out)
	assert.Equal(t, 2, count)
}

func TestRewrite_MixedNormalizedAndNot(t *testing.T) {
	out, count := Rewrite("{{#done}} and {#todo}")
	assert.Equal(t, "{{#done}} and {{#todo}}", out)
	assert.Equal(t, 1, count)
}

func TestRewrite_MultiByteText(t *testing.T) {
	out, count := Rewrite("héllo {#name} wörld — 日本語 {/name}")
	assert.Equal(t, "héllo {{#name}} wörld — 日本語 {{/name}}", out)
	assert.Equal(t, 2, count)
}

func TestRewrite_Idempotent(t *testing.T) {
	first, count := Rewrite("intro {#section} body {/section} outro")
	assert.Equal(t, 2, count)

	second, count := Rewrite(first)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, count)
}

func TestFindTags_MatchesRewriteOccurrences(t *testing.T) {
	input := "{#a} skip {{#b}} {^c} {/a}"
	tags := FindTags(input)

	assert.Equal(t, []Tag{
		{Operator: "#", Name: "a"},
		{Operator: "^", Name: "c"},
		{Operator: "/", Name: "a"},
	}, tags)

	_, count := Rewrite(input)
	assert.Equal(t, len(tags), count)
}

func TestFindTags_Empty(t *testing.T) {
	assert.Empty(t, FindTags("nothing here"))
}
