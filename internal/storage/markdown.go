package storage

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New().Parser()

// ParseMarkdownTitle extracts the first H1 title from markdown content.
func ParseMarkdownTitle(content string) string {
	source := []byte(content)
	doc := markdownParser.Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if heading, ok := n.(*ast.Heading); ok && entering && heading.Level == 1 {
			title = string(heading.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}

// ParseMarkdownFrontmatter splits YAML frontmatter from the markdown body.
func ParseMarkdownFrontmatter(content string) (string, string) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "---" {
		return "", content
	}

	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == 0 {
		return "", content
	}

	frontmatter := strings.Join(lines[1:frontmatterEnd], "\n")
	body := strings.Join(lines[frontmatterEnd+1:], "\n")

	return frontmatter, strings.TrimSpace(body)
}

// StripMarkdownTitle removes ATX H1 lines and returns the trimmed remainder.
func StripMarkdownTitle(body string) string {
	var kept []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
