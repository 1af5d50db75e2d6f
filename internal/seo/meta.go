package seo

import "strings"

const (
    // SiteName is the brand used in titles and og:site_name.
    SiteName = "Covera"
    // DefaultSiteURL is the production origin; config may override it.
    DefaultSiteURL = "https://covera.app"

    DefaultTitle       = "Covera - Vendor Compliance & Insurance Tracking Platform"
    DefaultDescription = "Automate vendor compliance and certificate of insurance (COI) tracking. Covera collects, verifies and monitors vendor insurance so your team never chases paperwork again."
    DefaultKeywords    = "vendor compliance, certificate of insurance tracking, COI tracking, vendor management, insurance compliance, subcontractor compliance, risk management"
    DefaultOGImage     = DefaultSiteURL + "/og-image.png"
    DefaultOGType      = "website"
)

// PageMetadata is the per-route SEO configuration applied to the document head.
type PageMetadata struct {
    Title       string
    Description string
    Keywords    string
    OGImage     string
    OGType      string
    // Canonical is empty when the current route URL should be used.
    Canonical string
    NoIndex   bool
    // Schema holds JSON-LD objects; one entry is emitted as an object, several as an array.
    Schema []any
}

// Defaults returns the site-wide metadata used when a page sets nothing.
func Defaults() PageMetadata {
    return PageMetadata{
        Title:       DefaultTitle,
        Description: DefaultDescription,
        Keywords:    DefaultKeywords,
        OGImage:     DefaultOGImage,
        OGType:      DefaultOGType,
    }
}

// WithDefaults fills empty fields from Defaults. Canonical and Schema are left as-is.
func (m PageMetadata) WithDefaults() PageMetadata {
    d := Defaults()
    if strings.TrimSpace(m.Title) == "" {
        m.Title = d.Title
    }
    if strings.TrimSpace(m.Description) == "" {
        m.Description = d.Description
    }
    if strings.TrimSpace(m.Keywords) == "" {
        m.Keywords = d.Keywords
    }
    if strings.TrimSpace(m.OGImage) == "" {
        m.OGImage = d.OGImage
    }
    if strings.TrimSpace(m.OGType) == "" {
        m.OGType = d.OGType
    }
    return m
}

// Title builds "<page> | Covera" unless the page title already carries the brand.
func Title(page string) string {
    page = strings.TrimSpace(page)
    if page == "" {
        return DefaultTitle
    }
    if strings.Contains(page, SiteName) {
        return page
    }
    return page + " | " + SiteName
}

// Absolute resolves a root-relative path against site. Absolute URLs are returned unchanged.
func Absolute(site, p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return strings.TrimRight(site, "/") + "/"
    }
    if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
        return p
    }
    if !strings.HasPrefix(p, "/") {
        p = "/" + p
    }
    return strings.TrimRight(site, "/") + p
}
