package head

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is the subset of a DOM element the synchronizer needs.
type Element interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	Text() string
	SetText(text string)
	// Remove detaches the element from its parent. Detached elements ignore it.
	Remove()
}

// Document abstracts the page whose <head> is synchronized.
type Document interface {
	// Find returns the first element inside <head> matching a CSS selector.
	Find(selector string) (Element, bool)
	// Create returns a new detached element.
	Create(tag string) Element
	// AppendToHead attaches an element created by this document as the last child of <head>.
	AppendToHead(el Element)
}

// HTMLDocument implements Document over a parsed golang.org/x/net/html tree.
type HTMLDocument struct {
	doc  *goquery.Document
	head *html.Node
	// wrappers keeps one Element per node so callers can compare elements by identity.
	wrappers map[*html.Node]*htmlElement
}

// ParseDocument parses r as HTML. The HTML5 parser always synthesizes a <head>.
func ParseDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	headSel := doc.Find("head").First()
	if headSel.Length() == 0 {
		return nil, errors.New("head: document has no <head>")
	}
	return &HTMLDocument{doc: doc, head: headSel.Get(0), wrappers: map[*html.Node]*htmlElement{}}, nil
}

// Find implements Document.
func (d *HTMLDocument) Find(selector string) (Element, bool) {
	sel := goquery.NewDocumentFromNode(d.head).Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return d.wrap(sel.Get(0)), true
}

func (d *HTMLDocument) wrap(n *html.Node) *htmlElement {
	if e, ok := d.wrappers[n]; ok {
		return e
	}
	e := &htmlElement{n: n}
	d.wrappers[n] = e
	return e
}

// Count returns the number of <head> elements matching selector.
func (d *HTMLDocument) Count(selector string) int {
	return goquery.NewDocumentFromNode(d.head).Find(selector).Length()
}

// Create implements Document.
func (d *HTMLDocument) Create(tag string) Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// AppendToHead implements Document.
func (d *HTMLDocument) AppendToHead(el Element) {
	e, ok := el.(*htmlElement)
	if !ok || e.n.Parent != nil {
		return
	}
	d.head.AppendChild(e.n)
}

// Render serializes the full document.
func (d *HTMLDocument) Render(w io.Writer) error {
	if len(d.doc.Nodes) == 0 {
		return errors.New("head: empty document")
	}
	return html.Render(w, d.doc.Nodes[0])
}

type htmlElement struct {
	n *html.Node
}

func (e *htmlElement) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *htmlElement) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *htmlElement) Text() string {
	var sb strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// SetText replaces all children with a single text node. Children of <script> are rendered raw.
func (e *htmlElement) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *htmlElement) Remove() {
	if e.n.Parent != nil {
		e.n.Parent.RemoveChild(e.n)
	}
}
