package pcgw

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// hintPattern matches the path shapes that wiki save-location sections use:
// absolute drive paths, %VAR% expansions, home-relative forms, and the common
// bare prefixes (Documents, Saved Games, AppData, OneDrive).
var hintPattern = regexp.MustCompile(strings.Join([]string{
	`[A-Za-z]:\\[^\n\r<>|?*"]+`,
	`%[A-Za-z_]+%\\[^\n\r<>|?*"]+`,
	`~\\[^\n\r<>|?*"]+`,
	`\\Users\\[^\\\n\r]+\\[^\n\r<>|?*"]+`,
	`Documents\\[^\n\r<>|?*"]+`,
	`Saved Games\\[^\n\r<>|?*"]+`,
	`AppData\\Roaming\\[^\n\r<>|?*"]+`,
	`AppData\\Local\\[^\n\r<>|?*"]+`,
	`OneDrive\\Documents\\[^\n\r<>|?*"]+`,
}, "|"))

// ExtractWindowsPaths pulls Windows path hints out of a rendered wiki
// section. Markup is stripped first so paths split across tags still match.
// Results are trimmed of trailing punctuation, required to have at least two
// backslash segments, deduplicated, and sorted.
func ExtractWindowsPaths(sectionHTML string) []string {
	text := flattenHTML(sectionHTML)

	seen := make(map[string]struct{})
	for _, m := range hintPattern.FindAllString(text, -1) {
		p := strings.TrimRight(strings.TrimSpace(m), `. ;:"')(`)
		if strings.Count(p, `\`) < 1 || p == "" {
			continue
		}
		seen[p] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// flattenHTML returns the text content of an HTML fragment, with element
// boundaries turned into newlines so adjacent cells do not merge into one
// bogus path.
func flattenHTML(s string) string {
	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			b.WriteByte('\n')
		}
	}
	walk(node)
	return b.String()
}
