package main

import (
    "fmt"
    "io/fs"
    "net/http"
    "os"
    "time"

    "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"
    g "maragu.dev/gomponents"

    "covera.app/covera-web/content"
    "covera.app/covera-web/internal/blog"
    "covera.app/covera-web/internal/config"
    "covera.app/covera-web/internal/head"
    "covera.app/covera-web/internal/inquiry"
    mw "covera.app/covera-web/internal/middleware"
    "covera.app/covera-web/internal/observability"
    "covera.app/covera-web/internal/seo"
    "covera.app/covera-web/internal/views"
)

// server holds the dependencies shared by handlers.
type server struct {
    cfg       *config.Config
    logger    *zap.Logger
    metrics   *observability.Metrics
    posts     *blog.Store
    inquiries *inquiry.Client
    tracker   *inquiry.Tracker
    assets    fs.FS
}

func newServer(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (*server, error) {
    if logger == nil {
        logger = zap.NewNop()
    }
    mw.ConfigureSessions(cfg.SessionSigningKey, cfg.IsProduction(), logger)

    postsFS := content.Blog()
    if cfg.ContentDir != "" {
        postsFS = os.DirFS(cfg.ContentDir)
    }
    assets := content.Static()
    if cfg.PublicDir != "" {
        assets = os.DirFS(cfg.PublicDir)
    }

    posts := blog.NewStore(postsFS, blog.WithTTL(cfg.BlogCacheTTL), blog.WithLogger(logger.Named("blog")))
    if err := posts.Load(); err != nil {
        return nil, fmt.Errorf("load blog: %w", err)
    }

    var client *inquiry.Client
    if cfg.Supabase.Enabled() {
        client = inquiry.NewClient(inquiry.Config{
            ProjectID:    cfg.Supabase.ProjectID,
            AnonKey:      cfg.Supabase.AnonKey,
            FunctionName: cfg.Supabase.FunctionName,
            BaseURL:      cfg.Supabase.BaseURL,
            Timeout:      cfg.Supabase.Timeout,
        })
    } else {
        logger.Warn("supabase not configured; form submissions are accepted locally")
    }

    return &server{
        cfg:       cfg,
        logger:    logger,
        metrics:   metrics,
        posts:     posts,
        inquiries: client,
        tracker:   inquiry.NewTracker(),
        assets:    assets,
    }, nil
}

func (s *server) routes() http.Handler {
    r := chi.NewRouter()
    r.Use(chimw.RequestID)
    // If deployed behind a trusted reverse proxy/load balancer, RealIP will use
    // X-Forwarded-For to determine the client IP.
    r.Use(chimw.RealIP)
    r.Use(mw.Logger(s.logger, s.metrics))
    r.Use(chimw.Recoverer)
    r.Use(chimw.Compress(5))
    r.Use(chimw.Timeout(s.cfg.RequestTimeout))

    // Health check
    r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "text/plain; charset=utf-8")
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    if s.metrics != nil {
        r.Handle("/metrics", s.metrics.Handler())
    }
    r.Handle("/assets/*", mw.AssetsWithCache(s.assets))
    r.Get("/robots.txt", s.robotsTxt)
    r.Get("/sitemap.xml", s.sitemapXML)

    r.Group(func(r chi.Router) {
        r.Use(mw.HTMX)
        r.Use(mw.Session)
        r.Use(mw.CSRF)
        r.Use(head.Middleware(head.Options{SiteURL: s.cfg.SiteURL, FixAlternate: s.cfg.FixAlternate}, s.observeHead))

        r.Get("/", s.home)
        r.Get("/about", s.about)
        r.Get("/features", s.features)
        r.Get("/pricing", s.pricing)
        r.Get("/industries/{slug}", s.industry)
        r.Get("/solutions/{slug}", s.solution)
        r.Get("/blog", s.blogIndex)
        r.Get("/blog/{slug}", s.blogPost)
        r.Get("/contact", s.contactPage)
        r.Post("/contact", s.submitContact)
        r.Get("/demo", s.demoPage)
        r.Post("/demo", s.submitDemo)
        r.Post("/api/phone/format", s.formatPhone)
        r.NotFound(s.notFound)
    })
    return r
}

func (s *server) observeHead(path string, created int, err error) {
    s.metrics.RecordHeadSync(created, err)
    if err != nil {
        s.logger.Warn("head sync failed", zap.String("path", path), zap.Error(err))
    }
}

// page renders a full document. meta is applied to <head> by head.Middleware.
func (s *server) page(w http.ResponseWriter, r *http.Request, status int, meta seo.PageMetadata, content g.Node) {
    meta = meta.WithDefaults()
    p := views.Page{
        Title: meta.Title,
        Path:  r.URL.Path,
        CSRF:  mw.CSRFToken(r),
        GA4ID: s.cfg.GA4ID,
    }
    if f, ok := mw.GetSession(r).TakeFlash(); ok {
        p.Toast = &views.Toast{Tone: f.Tone, Message: f.Message}
    }
    head.SetMetadata(r.Context(), meta)
    s.write(w, r, status, views.Layout(p, content))
}

// fragment renders a partial for htmx swaps; the head is left alone.
func (s *server) fragment(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
    s.write(w, r, status, n)
}

func (s *server) write(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(status)
    if err := n.Render(w); err != nil {
        observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
    }
}

func (s *server) lastModified() time.Time {
    posts, err := s.posts.List(blog.ListOptions{Limit: 1})
    if err != nil || len(posts) == 0 {
        return time.Time{}
    }
    if posts[0].UpdatedAt.IsZero() {
        return posts[0].PublishedAt
    }
    return posts[0].UpdatedAt
}
