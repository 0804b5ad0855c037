package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTMLSource extracts the visible text of an HTML document, either from a
// local file or fetched over HTTP.
type HTMLSource struct {
	httpClient *http.Client
}

func NewHTMLSource(timeout time.Duration) *HTMLSource {
	return &HTMLSource{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTMLSource) Text(ctx context.Context, input string) (string, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return s.fetch(ctx, input)
	}

	f, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("open html file: %w", err)
	}
	defer f.Close()

	return s.FromReader(f)
}

func (s *HTMLSource) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "finsift/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	return s.FromReader(resp.Body)
}

// FromReader parses HTML and returns its visible text, one text run per line.
func (s *HTMLSource) FromReader(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, iframe").Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	var buf strings.Builder
	for _, node := range sel.Nodes {
		visibleText(node, &buf)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// visibleText walks the node tree appending each non-blank text node on its
// own line, so downstream chunking sees line boundaries at markup boundaries.
func visibleText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			buf.WriteString(t)
			buf.WriteString("\n")
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(c, buf)
	}
}
