// Package head keeps the SEO tags of an HTML document's <head> in sync with a page's metadata.
package head

import (
	"fmt"
	"strings"

	"covera.app/covera-web/internal/seo"
)

const (
	themeColor     = "#0f766e"
	twitterHandle  = "@coverahq"
	fontsHost      = "https://fonts.googleapis.com"
	fontsStaticCDN = "https://fonts.gstatic.com"
	mobileMedia    = "only screen and (max-width: 640px)"
	jsonLDType     = "application/ld+json"
)

// Options configures a Manager.
type Options struct {
	// SiteURL is the absolute origin used for canonical, og:url and sitemap links.
	SiteURL string
	// FixAlternate updates the mobile alternate link on every Apply. When false the link keeps
	// the href it was created with.
	FixAlternate bool
}

// Manager creates or updates a fixed set of head tags. Every tag is looked up by a stable
// selector first, so repeated Apply calls never duplicate nodes.
type Manager struct {
	doc     Document
	opts    Options
	created []Element
}

// NewManager binds a Manager to doc.
func NewManager(doc Document, opts Options) *Manager {
	if strings.TrimSpace(opts.SiteURL) == "" {
		opts.SiteURL = seo.DefaultSiteURL
	}
	opts.SiteURL = strings.TrimRight(opts.SiteURL, "/")
	return &Manager{doc: doc, opts: opts}
}

// tag describes one managed element: its tag name, the attributes that identify it, and
// the attribute (or text, when valueAttr is empty) carrying the page-specific value.
type tag struct {
	name      string
	ident     [][2]string
	valueAttr string
	value     string
	// once tags are created on first Apply and never updated afterwards.
	once bool
}

func (t tag) selector() string {
	var sb strings.Builder
	sb.WriteString(t.name)
	for _, kv := range t.ident {
		fmt.Fprintf(&sb, `[%s=%q]`, kv[0], kv[1])
	}
	return sb.String()
}

func metaName(name, content string) tag {
	return tag{name: "meta", ident: [][2]string{{"name", name}}, valueAttr: "content", value: content}
}

func metaProperty(property, content string) tag {
	return tag{name: "meta", ident: [][2]string{{"property", property}}, valueAttr: "content", value: content}
}

func link(rel, href string, once bool, extra ...[2]string) tag {
	ident := append([][2]string{{"rel", rel}}, extra...)
	return tag{name: "link", ident: ident, valueAttr: "href", value: href, once: once}
}

// Apply synchronizes the head with meta for the route at path. Empty metadata fields fall
// back to seo.Defaults and an empty Canonical falls back to the route URL.
func (m *Manager) Apply(meta seo.PageMetadata, path string) {
	meta = meta.WithDefaults()
	if path == "" {
		path = "/"
	}
	canonical := strings.TrimSpace(meta.Canonical)
	if canonical == "" {
		canonical = seo.Absolute(m.opts.SiteURL, path)
	}
	image := seo.Absolute(m.opts.SiteURL, meta.OGImage)
	robots := "index, follow"
	if meta.NoIndex {
		robots = "noindex, nofollow"
	}

	m.setTitle(meta.Title)

	tags := []tag{
		metaName("description", meta.Description),
		metaName("keywords", meta.Keywords),
		metaName("author", seo.SiteName),
		metaName("robots", robots),
		metaProperty("og:title", meta.Title),
		metaProperty("og:description", meta.Description),
		metaProperty("og:image", image),
		metaProperty("og:url", canonical),
		metaProperty("og:type", meta.OGType),
		metaProperty("og:site_name", seo.SiteName),
		metaProperty("og:locale", "en_US"),
		metaName("twitter:card", "summary_large_image"),
		metaName("twitter:site", twitterHandle),
		metaName("twitter:title", meta.Title),
		metaName("twitter:description", meta.Description),
		metaName("twitter:image", image),
		metaName("theme-color", themeColor),
		metaName("apple-mobile-web-app-capable", "yes"),
		metaName("apple-mobile-web-app-status-bar-style", "default"),
		metaName("apple-mobile-web-app-title", seo.SiteName),
		link("canonical", canonical, false),
		link("sitemap", m.opts.SiteURL+"/sitemap.xml", true),
		link("alternate", seo.Absolute(m.opts.SiteURL, path), !m.opts.FixAlternate, [2]string{"media", mobileMedia}),
		link("preconnect", fontsHost, true, [2]string{"href", fontsHost}),
		link("preconnect", fontsStaticCDN, true, [2]string{"href", fontsStaticCDN}),
		link("dns-prefetch", fontsHost, true, [2]string{"href", fontsHost}),
	}
	for _, t := range tags {
		m.upsert(t)
	}
	m.setSchema(meta.Schema)
}

func (m *Manager) upsert(t tag) {
	el, ok := m.doc.Find(t.selector())
	if ok {
		if t.once {
			return
		}
		m.setValue(el, t)
		return
	}
	el = m.doc.Create(t.name)
	for _, kv := range t.ident {
		el.SetAttr(kv[0], kv[1])
	}
	if t.name == "link" && t.ident[0][1] == "sitemap" {
		el.SetAttr("type", "application/xml")
	}
	if t.name == "link" && t.ident[0][1] == "preconnect" && t.value == fontsStaticCDN {
		el.SetAttr("crossorigin", "")
	}
	m.setValue(el, t)
	m.append(el)
}

func (m *Manager) setValue(el Element, t tag) {
	if t.valueAttr == "" {
		el.SetText(t.value)
		return
	}
	el.SetAttr(t.valueAttr, t.value)
}

func (m *Manager) setTitle(title string) {
	el, ok := m.doc.Find("title")
	if !ok {
		el = m.doc.Create("title")
		m.append(el)
	}
	el.SetText(title)
}

// setSchema writes the JSON-LD script. An empty schema removes any existing script.
func (m *Manager) setSchema(schema []any) {
	sel := fmt.Sprintf(`script[type=%q]`, jsonLDType)
	el, ok := m.doc.Find(sel)
	if len(schema) == 0 {
		if ok {
			el.Remove()
			m.forget(el)
		}
		return
	}
	var payload string
	if len(schema) == 1 {
		payload = seo.JSON(schema[0])
	} else {
		payload = seo.JSON(schema)
	}
	if !ok {
		el = m.doc.Create("script")
		el.SetAttr("type", jsonLDType)
		m.append(el)
	}
	el.SetText(payload)
}

func (m *Manager) append(el Element) {
	m.doc.AppendToHead(el)
	m.created = append(m.created, el)
}

func (m *Manager) forget(el Element) {
	for i, c := range m.created {
		if c == el {
			m.created = append(m.created[:i], m.created[i+1:]...)
			return
		}
	}
}

// Created returns how many nodes this manager has added and not yet removed.
func (m *Manager) Created() int { return len(m.created) }

// Teardown removes every node this manager created. Pre-existing nodes it updated stay.
func (m *Manager) Teardown() {
	for _, el := range m.created {
		el.Remove()
	}
	m.created = nil
}
