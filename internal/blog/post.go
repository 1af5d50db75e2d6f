package blog

import (
	"errors"
	"html/template"
	"time"
)

// ErrNotFound is returned when a post cannot be located.
var ErrNotFound = errors.New("blog: not found")

// Post is a published article.
type Post struct {
	Slug           string
	Title          string
	Summary        string
	Author         string
	Category       string
	Tags           []string
	Image          string
	ReadingMinutes int
	PublishedAt    time.Time
	UpdatedAt      time.Time
	// Body is the markdown source; HTML is the rendered and sanitized body.
	Body  string
	HTML  template.HTML
	SEO   PostSEO
	Draft bool
}

// PostSEO holds optional per-post metadata overrides.
type PostSEO struct {
	Title       string
	Description string
	OGImage     string
}

// ListOptions controls List.
type ListOptions struct {
	Category string
	Tag      string
	Search   string
	Limit    int
}

type frontMatter struct {
	Title          string   `yaml:"title"`
	Summary        string   `yaml:"summary"`
	Author         string   `yaml:"author"`
	Category       string   `yaml:"category"`
	Tags           []string `yaml:"tags"`
	Image          string   `yaml:"image"`
	ReadingMinutes int      `yaml:"reading_minutes"`
	PublishedAt    string   `yaml:"published_at"`
	UpdatedAt      string   `yaml:"updated_at"`
	Draft          bool     `yaml:"draft"`
	SEO            struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
}

func clonePost(p Post) Post {
	cp := p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	return cp
}
