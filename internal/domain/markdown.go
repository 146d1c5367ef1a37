package domain

import (
	"regexp"
	"strings"
)

// Substitution rules applied in order over the whole document. Order matters:
// later rules assume the tags handled by earlier rules are gone.
var markdownRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Block headers h1-h4. h5/h6 are not recognized and fall through to
	// tag stripping, which drops the formatting but keeps the text.
	{regexp.MustCompile(`<h1[^>]*>(.*?)</h1>`), "# ${1}\n"},
	{regexp.MustCompile(`<h2[^>]*>(.*?)</h2>`), "## ${1}\n"},
	{regexp.MustCompile(`<h3[^>]*>(.*?)</h3>`), "### ${1}\n"},
	{regexp.MustCompile(`<h4[^>]*>(.*?)</h4>`), "#### ${1}\n"},

	// Paragraphs become text followed by a blank line.
	{regexp.MustCompile(`<p>(.*?)</p>`), "${1}\n\n"},
	{regexp.MustCompile(`<p\s+[^>]*>(.*?)</p>`), "${1}\n\n"},

	// Emphasis.
	{regexp.MustCompile(`<em>(.*?)</em>`), "*${1}*"},
	{regexp.MustCompile(`<strong>(.*?)</strong>`), "**${1}**"},

	// Line breaks.
	{regexp.MustCompile(`<br\s*/?>`), "\n"},
}

// Entity substitutions, applied sequentially after the tag rules.
var entityReplacements = [][2]string{
	{"&nbsp;", " "},
	{"\u00a0", " "}, // non-breaking space code point
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"…", "..."},
}

var (
	anyTag       = regexp.MustCompile(`<[^>]+>`)
	manyNewlines = regexp.MustCompile(`\n\n\n+`)
)

// HTMLToMarkdown converts a rendered HTML fragment into Markdown using a
// fixed, ordered sequence of text substitutions. It is deterministic, does no
// I/O and never fails; unsupported tags (tables, lists, links, images, code
// blocks) are stripped leaving their inner text behind. The matches do not
// understand nesting, so a tag nested inside itself produces incorrect
// output. This is a known limitation, kept for compatibility with the
// documents Confluence actually renders.
func HTMLToMarkdown(html string) string {
	text := html

	for _, rule := range markdownRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}

	for _, ent := range entityReplacements {
		text = strings.ReplaceAll(text, ent[0], ent[1])
	}

	// Strip whatever tags remain, then normalize paragraph spacing.
	text = anyTag.ReplaceAllString(text, "")
	text = manyNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// RenderDocument frames a converted page body as the final Markdown artifact:
// an H1 title line, a blank line, the converted body and a trailing newline.
// The artifact always begins with the page title even when the body carries
// its own h1.
func RenderDocument(title, html string) string {
	return "# " + title + "\n\n" + HTMLToMarkdown(html) + "\n"
}
