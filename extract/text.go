package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// nodeText returns the concatenated text content of a node's subtree,
// skipping script, style and noscript payloads.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.ElementNode:
			if cur.Data == "script" || cur.Data == "style" || cur.Data == "noscript" {
				return
			}
		case html.TextNode:
			text := strings.TrimSpace(cur.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteByte(' ')
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// visibleText extracts the visible text of a whole document, stripping all
// tags and script/style/noscript content. Used by the structure-independent
// strategies only.
func visibleText(markup string) string {
	tokenizer := html.NewTokenizer(bytes.NewReader([]byte(markup)))
	var buf strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return buf.String()
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "script" || tag == "style" || tag == "noscript" {
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "script" || tag == "style" || tag == "noscript" {
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if skipDepth == 0 {
				text := strings.TrimSpace(string(tokenizer.Text()))
				if text != "" {
					buf.WriteString(text)
					buf.WriteByte(' ')
				}
			}
		}
	}
}
