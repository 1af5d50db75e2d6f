// Package blog loads markdown articles with YAML front matter and renders them to sanitized HTML.
package blog

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultAuthor  = "Covera Team"
	wordsPerMinute = 220
	defaultTTL     = 5 * time.Minute
)

// Store serves posts from an fs.FS, reloading at most once per TTL.
type Store struct {
	fsys   fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu       sync.RWMutex
	posts    map[string]Post
	order    []string
	loadedAt time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithTTL sets how long a loaded set of posts is served before the directory is re-read.
func WithTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger receives reload failures that are absorbed by serving the previous posts.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore builds a store over the *.md files at the root of fsys.
func NewStore(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: bluemonday.UGCPolicy(),
		ttl:    defaultTTL,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load forces a re-read of every post. Parse failures abort the load.
func (s *Store) Load() error {
	files, err := fs.Glob(s.fsys, "*.md")
	if err != nil {
		return fmt.Errorf("blog: list posts: %w", err)
	}
	posts := make(map[string]Post, len(files))
	for _, f := range files {
		p, err := s.readPost(f)
		if err != nil {
			return err
		}
		if p.Draft {
			continue
		}
		posts[p.Slug] = p
	}
	order := make([]string, 0, len(posts))
	for slug := range posts {
		order = append(order, slug)
	}
	sortSlugs(order, posts)

	s.mu.Lock()
	s.posts = posts
	s.order = order
	s.loadedAt = s.now()
	s.mu.Unlock()
	return nil
}

// ensureLoaded reloads once the TTL has passed. A failed reload keeps the last good set
// until the next TTL; only the first load reports the error.
func (s *Store) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.posts != nil
	fresh := loaded && s.now().Sub(s.loadedAt) < s.ttl
	s.mu.RUnlock()
	if fresh {
		return nil
	}
	err := s.Load()
	if err == nil || !loaded {
		return err
	}
	s.logger.Warn("blog reload failed, serving previous posts", zap.Error(err))
	s.mu.Lock()
	s.loadedAt = s.now()
	s.mu.Unlock()
	return nil
}

// Get returns a post by slug.
func (s *Store) Get(slug string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	if err := s.ensureLoaded(); err != nil {
		return Post{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[slug]
	if !ok {
		return Post{}, ErrNotFound
	}
	return clonePost(p), nil
}

// List returns posts newest first, filtered by opts.
func (s *Store) List(opts ListOptions) ([]Post, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	tag := strings.ToLower(strings.TrimSpace(opts.Tag))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Post, 0, len(s.order))
	for _, slug := range s.order {
		p := s.posts[slug]
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if tag != "" && !containsFold(p.Tags, tag) {
			continue
		}
		if search != "" {
			hay := strings.ToLower(p.Title + " " + p.Summary + " " + strings.Join(p.Tags, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		out = append(out, clonePost(p))
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

// Categories returns the distinct categories in display order.
func (s *Store) Categories() ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]struct{}{}
	var out []string
	for _, slug := range s.order {
		c := s.posts[slug].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) readPost(file string) (Post, error) {
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return Post{}, fmt.Errorf("blog: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Post{}, fmt.Errorf("blog: parse front matter %s: %w", file, err)
		}
	}
	slug := strings.TrimSuffix(path.Base(file), ".md")
	var rendered bytes.Buffer
	if err := s.md.Convert([]byte(body), &rendered); err != nil {
		return Post{}, fmt.Errorf("blog: render %s: %w", file, err)
	}
	p := Post{
		Slug:           slug,
		Title:          strings.TrimSpace(front.Title),
		Summary:        strings.TrimSpace(front.Summary),
		Author:         firstNonEmpty(strings.TrimSpace(front.Author), defaultAuthor),
		Category:       strings.TrimSpace(front.Category),
		Tags:           trimAll(front.Tags),
		Image:          strings.TrimSpace(front.Image),
		ReadingMinutes: front.ReadingMinutes,
		PublishedAt:    parseDate(front.PublishedAt),
		UpdatedAt:      parseDate(front.UpdatedAt),
		Draft:          front.Draft,
		Body:           body,
		HTML:           template.HTML(s.policy.SanitizeBytes(rendered.Bytes())),
		SEO: PostSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	if p.Title == "" {
		p.Title = prettifySlug(slug)
	}
	if p.ReadingMinutes <= 0 {
		p.ReadingMinutes = readingMinutes(body)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.PublishedAt
	}
	return p, nil
}

func sortSlugs(order []string, posts map[string]Post) {
	sort.SliceStable(order, func(i, j int) bool {
		a, b := posts[order[i]], posts[order[j]]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		return a.Slug < b.Slug
	})
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func readingMinutes(body string) int {
	n := len(strings.Fields(body))
	m := (n + wordsPerMinute - 1) / wordsPerMinute
	if m < 1 {
		return 1
	}
	return m
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(list []string, val string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), val) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
