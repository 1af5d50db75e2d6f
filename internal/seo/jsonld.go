package seo

import (
    "encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
    b, err := json.Marshal(v)
    if err != nil {
        return ""
    }
    return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string, sameAs ...string) map[string]any {
    m := map[string]any{
        "@context": "https://schema.org",
        "@type":    "Organization",
        "name":     name,
    }
    if url != "" { m["url"] = url }
    if logoURL != "" { m["logo"] = logoURL }
    if len(sameAs) > 0 { m["sameAs"] = append([]string(nil), sameAs...) }
    return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
    m := map[string]any{
        "@context": "https://schema.org",
        "@type":    "WebSite",
        "name":     name,
    }
    if url != "" { m["url"] = url }
    if searchActionURL != "" {
        m["potentialAction"] = map[string]any{
            "@type": "SearchAction",
            "target": searchActionURL + "{search_term_string}",
            "query-input": "required name=search_term_string",
        }
    }
    return m
}

// SoftwareApplication describes the product itself, optionally with a starting price offer.
func SoftwareApplication(name, description, url, lowPrice string) map[string]any {
    m := map[string]any{
        "@context":            "https://schema.org",
        "@type":               "SoftwareApplication",
        "name":                name,
        "applicationCategory": "BusinessApplication",
        "operatingSystem":     "Web",
    }
    if description != "" { m["description"] = description }
    if url != "" { m["url"] = url }
    if lowPrice != "" {
        m["offers"] = map[string]any{
            "@type":         "AggregateOffer",
            "lowPrice":      lowPrice,
            "priceCurrency": "USD",
        }
    }
    return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
    Name string
    Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
    el := make([]map[string]any, 0, len(items))
    for i, it := range items {
        li := map[string]any{
            "@type":    "ListItem",
            "position": i + 1,
            "name":     it.Name,
        }
        // the trailing crumb may omit its URL
        if it.Item != "" {
            li["item"] = it.Item
        }
        el = append(el, li)
    }
    return map[string]any{
        "@context":        "https://schema.org",
        "@type":           "BreadcrumbList",
        "itemListElement": el,
    }
}

// Article returns a minimal Article schema payload.
func Article(headline, description, url, imageURL, authorName, datePublished, dateModified string) map[string]any {
    m := map[string]any{
        "@context":      "https://schema.org",
        "@type":         "Article",
        "headline":      headline,
        "publisher":     map[string]any{"@type": "Organization", "name": SiteName},
    }
    if description != "" { m["description"] = description }
    if url != "" {
        m["url"] = url
        m["mainEntityOfPage"] = url
    }
    if imageURL != "" { m["image"] = imageURL }
    if authorName != "" { m["author"] = map[string]any{"@type": "Person", "name": authorName} }
    if datePublished != "" { m["datePublished"] = datePublished }
    if dateModified != "" { m["dateModified"] = dateModified }
    return m
}

// Question is a single FAQ entry.
type Question struct {
    Question string
    Answer   string
}

// FAQPage builds schema.org FAQPage from question/answer pairs.
func FAQPage(items []Question) map[string]any {
    el := make([]map[string]any, 0, len(items))
    for _, q := range items {
        el = append(el, map[string]any{
            "@type": "Question",
            "name":  q.Question,
            "acceptedAnswer": map[string]any{
                "@type": "Answer",
                "text":  q.Answer,
            },
        })
    }
    return map[string]any{
        "@context":   "https://schema.org",
        "@type":      "FAQPage",
        "mainEntity": el,
    }
}

// Service describes an industry or solution offering provided by the organization.
func Service(name, description, url, audience string) map[string]any {
    m := map[string]any{
        "@context": "https://schema.org",
        "@type":    "Service",
        "name":     name,
        "provider": map[string]any{"@type": "Organization", "name": SiteName},
    }
    if description != "" { m["description"] = description }
    if url != "" { m["url"] = url }
    if audience != "" { m["audience"] = map[string]any{"@type": "BusinessAudience", "audienceType": audience} }
    return m
}
