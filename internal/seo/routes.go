package seo

// PageKey identifies a statically configured route.
type PageKey int

const (
    PageHome PageKey = iota
    PageAbout
    PageFeatures
    PagePricing
    PageContact
    PageDemo
    PageBlog
    PageNotFound
)

var pageKeyNames = map[PageKey]string{
    PageHome:     "home",
    PageAbout:    "about",
    PageFeatures: "features",
    PagePricing:  "pricing",
    PageContact:  "contact",
    PageDemo:     "demo",
    PageBlog:     "blog",
    PageNotFound: "not_found",
}

func (k PageKey) String() string {
    if n, ok := pageKeyNames[k]; ok {
        return n
    }
    return "unknown"
}

// pageConfigs is keyed by PageKey; schema is attached in Config because it depends on the site URL.
var pageConfigs = map[PageKey]PageMetadata{
    PageHome: {},
    PageAbout: {
        Title:       Title("About Us"),
        Description: "Covera helps property managers, general contractors and enterprises keep every vendor insured and compliant without spreadsheets or email chases.",
        Keywords:    "about covera, vendor compliance company, COI tracking software, insurance compliance team",
    },
    PageFeatures: {
        Title:       Title("Features"),
        Description: "Automated COI collection, AI-assisted certificate review, expiration reminders, vendor self-service portals and audit-ready compliance reports.",
        Keywords:    "COI automation, certificate review, insurance expiration alerts, vendor portal, compliance reporting",
    },
    PagePricing: {
        Title:       Title("Pricing"),
        Description: "Simple, transparent pricing for vendor compliance and COI tracking. Start with Starter, scale with Professional, or talk to us about Enterprise.",
        Keywords:    "COI tracking pricing, vendor compliance software cost, certificate of insurance software pricing",
    },
    PageContact: {
        Title:       Title("Contact Us"),
        Description: "Questions about vendor compliance or COI tracking? Send the Covera team a message and we will get back to you within one business day.",
        Keywords:    "contact covera, vendor compliance support, COI tracking help",
    },
    PageDemo: {
        Title:       Title("Request a Demo"),
        Description: "See how Covera automates certificate of insurance tracking for your vendors. Book a personalized 30 minute walkthrough.",
        Keywords:    "COI tracking demo, vendor compliance demo, insurance tracking walkthrough",
    },
    PageBlog: {
        Title:       Title("Blog"),
        Description: "Guides, checklists and industry news on vendor compliance, certificates of insurance and risk management.",
        Keywords:    "vendor compliance blog, COI guides, certificate of insurance tips, risk management articles",
    },
    PageNotFound: {
        Title:       Title("Page Not Found"),
        Description: "The page you were looking for does not exist.",
        NoIndex:     true,
    },
}

// Config returns the metadata for a static route with defaults applied.
func Config(key PageKey, siteURL string) PageMetadata {
    m := pageConfigs[key]
    switch key {
    case PageHome:
        m.Schema = []any{
            Organization(SiteName, siteURL, Absolute(siteURL, "/logo.png"), "https://www.linkedin.com/company/covera"),
            WebSite(SiteName, siteURL, ""),
            SoftwareApplication(SiteName, DefaultDescription, siteURL, "99"),
        }
    case PageAbout:
        m.Schema = []any{Organization(SiteName, siteURL, Absolute(siteURL, "/logo.png"))}
    case PageFeatures:
        m.Schema = []any{SoftwareApplication(SiteName, m.Description, Absolute(siteURL, "/features"), "")}
    }
    return m.WithDefaults()
}
