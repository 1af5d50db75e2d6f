package seo

import (
    "encoding/xml"
    "io"
    "time"
)

// SitemapURL is a single <url> entry.
type SitemapURL struct {
    Loc        string `xml:"loc"`
    LastMod    string `xml:"lastmod,omitempty"`
    ChangeFreq string `xml:"changefreq,omitempty"`
    Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
    XMLName xml.Name     `xml:"urlset"`
    Xmlns   string       `xml:"xmlns,attr"`
    URLs    []SitemapURL `xml:"url"`
}

// SitemapEntry builds an entry for a root-relative path.
func SitemapEntry(site, path string, lastMod time.Time, changeFreq, priority string) SitemapURL {
    e := SitemapURL{
        Loc:        Absolute(site, path),
        ChangeFreq: changeFreq,
        Priority:   priority,
    }
    if !lastMod.IsZero() {
        e.LastMod = lastMod.UTC().Format("2006-01-02")
    }
    return e
}

// WriteSitemap encodes entries as a sitemaps.org urlset.
func WriteSitemap(w io.Writer, entries []SitemapURL) error {
    if _, err := io.WriteString(w, xml.Header); err != nil {
        return err
    }
    enc := xml.NewEncoder(w)
    enc.Indent("", "  ")
    if err := enc.Encode(urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: entries}); err != nil {
        return err
    }
    return enc.Flush()
}
