package scrape

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/yurkevych/parafii/core"
)

// opysRef is one entry of the opys index page.
type opysRef struct {
	Number string
	URL    *url.URL
}

// parseOpysList extracts the opys table from the index page. Each row has
// the opys number in its first cell and a link to the opys page in the
// second. Relative links are resolved against base.
func parseOpysList(doc *html.Node, base *url.URL) []opysRef {
	var refs []opysRef
	for _, row := range findAll(doc, "tr") {
		cells := findAll(row, "td")
		if len(cells) < 2 {
			continue
		}
		number := strings.TrimSpace(textContent(cells[0]))
		if number == "" {
			continue
		}
		link := firstDescendant(cells[1], "a")
		if link == nil {
			continue
		}
		target, err := base.Parse(strings.TrimSpace(attrValue(link, "href")))
		if err != nil || target.String() == "" {
			continue
		}
		refs = append(refs, opysRef{Number: number, URL: target})
	}
	return refs
}

// parseCases extracts the case table of one opys page. Each row has the
// sprava number in its first cell and, in the second, a link wrapping a
// paragraph with the case title. Rows whose first cell is not a number are
// header or layout rows and are skipped.
func parseCases(doc *html.Node, base *url.URL, opys string) []core.ArchiveCase {
	var cases []core.ArchiveCase
	for _, row := range findAll(doc, "tr") {
		cells := findAll(row, "td")
		if len(cells) < 2 {
			continue
		}
		sprava := strings.TrimSpace(textContent(cells[0]))
		if !isDigits(sprava) {
			continue
		}
		link := firstDescendant(cells[1], "a")
		if link == nil {
			continue
		}
		title := firstDescendant(link, "p")
		if title == nil {
			continue
		}
		name := strings.TrimSpace(textContent(title))
		if name == "" {
			continue
		}
		target, err := base.Parse(strings.TrimSpace(attrValue(link, "href")))
		if err != nil {
			continue
		}
		cases = append(cases, core.ArchiveCase{
			Opys:   opys,
			Sprava: sprava,
			Name:   name,
			URL:    target.String(),
		})
	}
	return cases
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// findAll returns all descendant elements with the given tag, in document
// order.
func findAll(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			nodes = append(nodes, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		visit(child)
	}
	return nodes
}

// firstDescendant returns the first descendant element with the given tag.
func firstDescendant(n *html.Node, tag string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == tag {
			return child
		}
		if found := firstDescendant(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return sb.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
