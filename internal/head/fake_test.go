package head

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covera.app/covera-web/internal/seo"
)

// memDoc is a DOM-free Document used to check that Manager only relies on the interface.
type memDoc struct {
	head []*memEl
}

type memEl struct {
	doc      *memDoc
	tag      string
	attrs    map[string]string
	text     string
	attached bool
}

var selectorPart = regexp.MustCompile(`^([a-z]+)|\[([a-z:\-]+)="([^"]*)"\]`)

func (d *memDoc) Find(selector string) (Element, bool) {
	tagName := ""
	want := map[string]string{}
	for _, m := range selectorPart.FindAllStringSubmatch(selector, -1) {
		if m[1] != "" {
			tagName = m[1]
			continue
		}
		want[m[2]] = m[3]
	}
	for _, el := range d.head {
		if el.tag != tagName {
			continue
		}
		match := true
		for k, v := range want {
			if el.attrs[k] != v {
				match = false
				break
			}
		}
		if match {
			return el, true
		}
	}
	return nil, false
}

func (d *memDoc) Create(tag string) Element {
	return &memEl{doc: d, tag: tag, attrs: map[string]string{}}
}

func (d *memDoc) AppendToHead(el Element) {
	e := el.(*memEl)
	if e.attached {
		return
	}
	e.attached = true
	d.head = append(d.head, e)
}

func (e *memEl) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *memEl) SetAttr(name, value string) { e.attrs[name] = value }
func (e *memEl) Text() string                { return e.text }
func (e *memEl) SetText(text string)         { e.text = text }

func (e *memEl) Remove() {
	if !e.attached {
		return
	}
	for i, el := range e.doc.head {
		if el == e {
			e.doc.head = append(e.doc.head[:i], e.doc.head[i+1:]...)
			break
		}
	}
	e.attached = false
}

func TestManagerWorksAgainstAnyDocument(t *testing.T) {
	doc := &memDoc{}
	m := NewManager(doc, Options{SiteURL: "https://covera.app"})

	m.Apply(pageA(), "/pricing")
	n := len(doc.head)
	m.Apply(pageA(), "/pricing")
	require.Len(t, doc.head, n)

	m.Apply(pageB(), "/blog")
	require.Len(t, doc.head, n)

	desc, ok := doc.Find(`meta[name="description"]`)
	require.True(t, ok)
	v, _ := desc.Attr("content")
	assert.Equal(t, "Compliance guides.", v)

	title, ok := doc.Find("title")
	require.True(t, ok)
	assert.Equal(t, "Blog | Covera", title.Text())

	m.Teardown()
	assert.Empty(t, doc.head)
}

func TestManagerDefaultsSiteURL(t *testing.T) {
	doc := &memDoc{}
	NewManager(doc, Options{}).Apply(seo.PageMetadata{}, "")

	canonical, ok := doc.Find(`link[rel="canonical"]`)
	require.True(t, ok)
	href, _ := canonical.Attr("href")
	assert.Equal(t, seo.DefaultSiteURL+"/", href)
}
