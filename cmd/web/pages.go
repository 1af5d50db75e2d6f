package main

import (
    "errors"
    "fmt"
    "io"
    "net/http"
    "strings"

    "github.com/go-chi/chi/v5"
    "go.uber.org/zap"

    "covera.app/covera-web/internal/blog"
    "covera.app/covera-web/internal/format"
    mw "covera.app/covera-web/internal/middleware"
    "covera.app/covera-web/internal/nav"
    "covera.app/covera-web/internal/observability"
    "covera.app/covera-web/internal/seo"
    "covera.app/covera-web/internal/site"
    "covera.app/covera-web/internal/views"
)

const (
    latestPostCount  = 3
    relatedPostCount = 3
)

func (s *server) home(w http.ResponseWriter, r *http.Request) {
    latest, err := s.posts.List(blog.ListOptions{Limit: latestPostCount})
    if err != nil {
        observability.FromContext(r.Context()).Warn("list latest posts", zap.Error(err))
    }
    meta := seo.Config(seo.PageHome, s.cfg.SiteURL)
    s.page(w, r, http.StatusOK, meta, views.HomePage(latest))
}

func (s *server) about(w http.ResponseWriter, r *http.Request) {
    s.page(w, r, http.StatusOK, seo.Config(seo.PageAbout, s.cfg.SiteURL), views.AboutPage())
}

func (s *server) features(w http.ResponseWriter, r *http.Request) {
    s.page(w, r, http.StatusOK, seo.Config(seo.PageFeatures, s.cfg.SiteURL), views.FeaturesPage())
}

func (s *server) pricing(w http.ResponseWriter, r *http.Request) {
    faqs := site.FAQs()
    meta := seo.Config(seo.PagePricing, s.cfg.SiteURL)
    meta.Schema = []any{
        seo.SoftwareApplication(seo.SiteName, meta.Description, seo.Absolute(s.cfg.SiteURL, "/pricing"), fmt.Sprint(site.LowestPrice()/100)),
        seo.FAQPage(site.FAQSchema(faqs)),
    }
    s.page(w, r, http.StatusOK, meta, views.PricingPage(site.Plans(), faqs))
}

func (s *server) industry(w http.ResponseWriter, r *http.Request) {
    l, ok := site.Industry(chi.URLParam(r, "slug"))
    if !ok {
        s.notFound(w, r)
        return
    }
    s.landing(w, r, l, l.Name+" teams")
}

func (s *server) solution(w http.ResponseWriter, r *http.Request) {
    l, ok := site.Solution(chi.URLParam(r, "slug"))
    if !ok {
        s.notFound(w, r)
        return
    }
    s.landing(w, r, l, "")
}

func (s *server) landing(w http.ResponseWriter, r *http.Request, l site.Landing, audience string) {
    crumbs := nav.Breadcrumbs(r.URL.Path, l.Name)
    pageURL := seo.Absolute(s.cfg.SiteURL, r.URL.Path)
    meta := l.SEO
    meta.Schema = []any{
        seo.Service(l.Name, l.Subheadline, pageURL, audience),
        seo.BreadcrumbList(nav.Schema(s.cfg.SiteURL, crumbs)),
    }
    s.page(w, r, http.StatusOK, meta, views.LandingPage(l, crumbs))
}

func (s *server) blogIndex(w http.ResponseWriter, r *http.Request) {
    filter := views.BlogFilter{
        Category: strings.TrimSpace(r.URL.Query().Get("category")),
        Search:   strings.TrimSpace(r.URL.Query().Get("q")),
    }
    posts, err := s.posts.List(blog.ListOptions{
        Category: filter.Category,
        Tag:      strings.TrimSpace(r.URL.Query().Get("tag")),
        Search:   filter.Search,
    })
    if err != nil {
        s.serverError(w, r, err)
        return
    }
    filter.Categories, _ = s.posts.Categories()

    meta := seo.Config(seo.PageBlog, s.cfg.SiteURL)
    meta.Canonical = seo.Absolute(s.cfg.SiteURL, "/blog")
    crumbs := nav.Breadcrumbs("/blog", "")
    meta.Schema = []any{seo.BreadcrumbList(nav.Schema(s.cfg.SiteURL, crumbs))}
    s.page(w, r, http.StatusOK, meta, views.BlogIndex(posts, filter))
}

func (s *server) blogPost(w http.ResponseWriter, r *http.Request) {
    p, err := s.posts.Get(chi.URLParam(r, "slug"))
    if errors.Is(err, blog.ErrNotFound) {
        s.notFound(w, r)
        return
    }
    if err != nil {
        s.serverError(w, r, err)
        return
    }

    crumbs := nav.Breadcrumbs(r.URL.Path, p.Title)
    s.page(w, r, http.StatusOK, s.postMetadata(p, crumbs), views.PostBody(p, crumbs, s.related(p)))
}

func (s *server) postMetadata(p blog.Post, crumbs []nav.Crumb) seo.PageMetadata {
    pageURL := seo.Absolute(s.cfg.SiteURL, "/blog/"+p.Slug)
    title := p.SEO.Title
    if title == "" {
        title = p.Title
    }
    desc := p.SEO.Description
    if desc == "" {
        desc = p.Summary
    }
    image := p.SEO.OGImage
    if image == "" {
        image = p.Image
    }
    var imageURL string
    if image != "" {
        imageURL = seo.Absolute(s.cfg.SiteURL, image)
    }
    modified := p.UpdatedAt
    if modified.IsZero() {
        modified = p.PublishedAt
    }
    return seo.PageMetadata{
        Title:       seo.Title(title),
        Description: desc,
        Keywords:    strings.Join(p.Tags, ", "),
        OGImage:     imageURL,
        OGType:      "article",
        Canonical:   pageURL,
        Schema: []any{
            seo.Article(p.Title, desc, pageURL, imageURL, p.Author, format.ISODate(p.PublishedAt), format.ISODate(modified)),
            seo.BreadcrumbList(nav.Schema(s.cfg.SiteURL, crumbs)),
        },
    }
}

// related prefers posts in the same category and falls back to the newest posts.
func (s *server) related(p blog.Post) []blog.Post {
    out := make([]blog.Post, 0, relatedPostCount)
    seen := map[string]bool{p.Slug: true}
    add := func(posts []blog.Post) {
        for _, c := range posts {
            if len(out) == relatedPostCount {
                return
            }
            if seen[c.Slug] {
                continue
            }
            seen[c.Slug] = true
            out = append(out, c)
        }
    }
    if p.Category != "" {
        sameCat, _ := s.posts.List(blog.ListOptions{Category: p.Category})
        add(sameCat)
    }
    if len(out) < relatedPostCount {
        newest, _ := s.posts.List(blog.ListOptions{})
        add(newest)
    }
    return out
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
    s.page(w, r, http.StatusNotFound, seo.Config(seo.PageNotFound, s.cfg.SiteURL), views.NotFoundPage())
}

func (s *server) serverError(w http.ResponseWriter, r *http.Request, err error) {
    observability.FromContext(r.Context()).Error("request failed", zap.Error(err))
    msg := http.StatusText(http.StatusInternalServerError)
    if rid, ok := mw.RequestID(r.Context()); ok {
        msg += " (request " + rid + ")"
    }
    mw.WriteError(w, r, http.StatusInternalServerError, msg)
}

func (s *server) robotsTxt(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
    var b strings.Builder
    b.WriteString("User-agent: *\n")
    if s.cfg.IsProduction() {
        b.WriteString("Allow: /\n")
    } else {
        b.WriteString("Disallow: /\n")
    }
    fmt.Fprintf(&b, "\nSitemap: %s\n", seo.Absolute(s.cfg.SiteURL, "/sitemap.xml"))
    _, _ = io.WriteString(w, b.String())
}

func (s *server) sitemapXML(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/xml; charset=utf-8")
    if err := s.writeSitemap(w); err != nil {
        observability.FromContext(r.Context()).Error("write sitemap", zap.Error(err))
    }
}

// writeSitemap lists every indexable page: static routes, landing pages and published posts.
func (s *server) writeSitemap(w io.Writer) error {
    base := s.cfg.SiteURL
    updated := s.lastModified()
    entries := []seo.SitemapURL{
        seo.SitemapEntry(base, "/", updated, "weekly", "1.0"),
        seo.SitemapEntry(base, "/features", updated, "monthly", "0.8"),
        seo.SitemapEntry(base, "/pricing", updated, "monthly", "0.8"),
        seo.SitemapEntry(base, "/demo", updated, "monthly", "0.8"),
        seo.SitemapEntry(base, "/contact", updated, "yearly", "0.5"),
        seo.SitemapEntry(base, "/about", updated, "yearly", "0.5"),
        seo.SitemapEntry(base, "/blog", updated, "daily", "0.7"),
    }
    for _, l := range landingPages() {
        entries = append(entries, seo.SitemapEntry(base, l, updated, "monthly", "0.7"))
    }
    posts, err := s.posts.List(blog.ListOptions{})
    if err != nil {
        return err
    }
    for _, p := range posts {
        mod := p.UpdatedAt
        if mod.IsZero() {
            mod = p.PublishedAt
        }
        entries = append(entries, seo.SitemapEntry(base, "/blog/"+p.Slug, mod, "monthly", "0.6"))
    }
    return seo.WriteSitemap(w, entries)
}

func landingPages() []string {
    var paths []string
    for _, l := range site.Solutions() {
        paths = append(paths, "/solutions/"+l.Slug)
    }
    for _, l := range site.Industries() {
        paths = append(paths, "/industries/"+l.Slug)
    }
    return paths
}
