package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"cmodel/model"
)

// ParseHTML reads HTML document converting it to UTF-8 according to content
// type or meta tags.
func ParseHTML(r io.Reader, contentType string) (*html.Node, error) {
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("unable to detect charset: %w", err)
	}
	doc, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse html: %w", err)
	}
	return doc, nil
}

// FindRoot returns first element matching selector, body when selector is
// empty.
func FindRoot(doc *html.Node, selector string) (*html.Node, error) {
	if selector == "" {
		selector = "body"
	}
	var (
		found *goquery.Selection
		err   error
	)
	func() {
		// cascadia panics on some malformed selectors
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("bad selector %q: %v", selector, r)
			}
		}()
		found = goquery.NewDocumentFromNode(doc).Find(selector).First()
	}()
	if err != nil {
		return nil, err
	}
	if found.Length() == 0 {
		return nil, fmt.Errorf("nothing matches %q", selector)
	}
	return found.Nodes[0], nil
}

// SelectionFromCaret removes caret characters from text under root and
// returns selection they stood for: one caret is a collapsed selection, two
// carets delimit a range. Nil is returned when there are no carets.
func SelectionFromCaret(root *html.Node, caret string) (*RegularSelection, error) {
	if caret == "" {
		return nil, errors.New("empty caret")
	}
	type position struct {
		node   *html.Node
		offset int
	}
	var found []position

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			for {
				i := strings.Index(n.Data, caret)
				if i < 0 {
					break
				}
				found = append(found, position{node: n, offset: utf8.RuneCountInString(n.Data[:i])})
				n.Data = n.Data[:i] + n.Data[i+len(caret):]
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &RegularSelection{
			StartContainer: found[0].node, StartOffset: found[0].offset,
			EndContainer: found[0].node, EndOffset: found[0].offset,
			IsCollapsed: true,
		}, nil
	case 2:
		return &RegularSelection{
			StartContainer: found[0].node, StartOffset: found[0].offset,
			EndContainer: found[1].node, EndOffset: found[1].offset,
			IsCollapsed: found[0] == found[1],
		}, nil
	}
	return nil, fmt.Errorf("expected at most 2 carets, found %d", len(found))
}

// ConvertHTML parses document, optionally extracts selection marked with
// caret characters and converts root element selected by selector.
func ConvertHTML(r io.Reader, contentType, selector, caret string, opts ...Option) (*model.Document, error) {
	doc, err := ParseHTML(r, contentType)
	if err != nil {
		return nil, err
	}
	root, err := FindRoot(doc, selector)
	if err != nil {
		return nil, err
	}
	if caret != "" {
		sel, err := SelectionFromCaret(root, caret)
		if err != nil {
			return nil, err
		}
		if sel != nil {
			opts = append(opts, WithRegularSelection(sel))
		}
	}
	return Convert(root, NewContext(opts...)), nil
}
