package nav

import (
    "path"
    "strings"

    "covera.app/covera-web/internal/seo"
)

// Item represents a top-level navigation item.
type Item struct {
    Path  string // e.g. "/pricing"
    Label string
    // Children are shown in a dropdown; the parent path is a section prefix.
    Children []Item
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
    Href     string
    Label    string
    Active   bool
    Children []RenderedItem
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
    Href   string
    Label  string
    Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
    {Path: "/solutions", Label: "Solutions", Children: []Item{
        {Path: "/solutions/coi-tracking", Label: "COI Tracking"},
        {Path: "/solutions/vendor-onboarding", Label: "Vendor Onboarding"},
        {Path: "/solutions/compliance-reporting", Label: "Compliance Reporting"},
    }},
    {Path: "/industries", Label: "Industries", Children: []Item{
        {Path: "/industries/construction", Label: "Construction"},
        {Path: "/industries/property-management", Label: "Property Management"},
        {Path: "/industries/healthcare", Label: "Healthcare"},
        {Path: "/industries/logistics", Label: "Logistics"},
        {Path: "/industries/retail", Label: "Retail"},
    }},
    {Path: "/pricing", Label: "Pricing"},
    {Path: "/blog", Label: "Blog"},
    {Path: "/about", Label: "About"},
    {Path: "/contact", Label: "Contact"},
}

// sections have no page of their own; breadcrumbs render them without a link.
var sections = map[string]bool{"/solutions": true, "/industries": true}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
    if currentPath == "" {
        currentPath = "/"
    }
    return build(Main, currentPath)
}

func build(items []Item, currentPath string) []RenderedItem {
    out := make([]RenderedItem, 0, len(items))
    for _, it := range items {
        out = append(out, RenderedItem{
            Href:     it.Path,
            Label:    it.Label,
            Active:   isActive(it.Path, currentPath),
            Children: build(it.Children, currentPath),
        })
    }
    return out
}

func isActive(itemPath, currentPath string) bool {
    if itemPath == "/" {
        return currentPath == "/"
    }
    // match exact or prefix boundary: "/blog" or "/blog/..."
    if currentPath == itemPath {
        return true
    }
    return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Top-level sections use their nav label
// - Deeper segments use the nav label when known, else the given leaf label or a prettified segment
func Breadcrumbs(currentPath, leafLabel string) []Crumb {
    if currentPath == "" {
        currentPath = "/"
    }
    crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
    if currentPath == "/" {
        return crumbs
    }

    clean := path.Clean("/" + strings.Trim(currentPath, "/"))
    parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

    href := ""
    for i, seg := range parts {
        href = href + "/" + seg
        last := i == len(parts)-1
        label := labelFor(href)
        if label == "" {
            label = titleFromSegment(seg)
            if last && leafLabel != "" {
                label = leafLabel
            }
        }
        crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
    }
    return crumbs
}

// Linkable reports whether a crumb points at a real page.
func (c Crumb) Linkable() bool { return !sections[c.Href] }

// Schema converts crumbs into BreadcrumbList items with absolute URLs.
func Schema(siteURL string, crumbs []Crumb) []seo.BreadcrumbItem {
    items := make([]seo.BreadcrumbItem, 0, len(crumbs))
    for _, c := range crumbs {
        item := seo.BreadcrumbItem{Name: c.Label}
        if c.Linkable() {
            item.Item = seo.Absolute(siteURL, c.Href)
        }
        items = append(items, item)
    }
    return items
}

func labelFor(href string) string {
    for _, it := range Main {
        if it.Path == href {
            return it.Label
        }
        for _, c := range it.Children {
            if c.Path == href {
                return c.Label
            }
        }
    }
    return ""
}

func titleFromSegment(seg string) string {
    if seg == "" {
        return seg
    }
    // replace hyphens/underscores with spaces and capitalize first letter
    s := strings.ReplaceAll(seg, "-", " ")
    s = strings.ReplaceAll(s, "_", " ")
    r := []rune(s)
    r[0] = toUpper(r[0])
    return string(r)
}

func toUpper(r rune) rune {
    // ASCII only is sufficient for slugs here
    if r >= 'a' && r <= 'z' {
        return r - ('a' - 'A')
    }
    return r
}
