// Package site holds the marketing copy for industry, solution and pricing pages.
package site

import (
	"sort"

	"covera.app/covera-web/internal/seo"
)

// Pain is a problem statement shown on a landing page.
type Pain struct {
	Title  string
	Detail string
}

// Feature is one card in a landing page feature grid.
type Feature struct {
	Icon   string
	Title  string
	Detail string
}

// Stat is a headline number.
type Stat struct {
	Value string
	Label string
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
}

// Landing describes an industry or solution page.
type Landing struct {
	Slug        string
	Name        string
	Headline    string
	Subheadline string
	HeroImage   string
	Pains       []Pain
	Features    []Feature
	Stats       []Stat
	Testimonial Testimonial
	SEO         seo.PageMetadata
}

// Industry returns the industry landing page for slug.
func Industry(slug string) (Landing, bool) {
	l, ok := industries[slug]
	return l, ok
}

// Solution returns the solution landing page for slug.
func Solution(slug string) (Landing, bool) {
	l, ok := solutions[slug]
	return l, ok
}

// Industries lists every industry page ordered by name.
func Industries() []Landing { return sorted(industries) }

// Solutions lists every solution page ordered by name.
func Solutions() []Landing { return sorted(solutions) }

func sorted(m map[string]Landing) []Landing {
	out := make([]Landing, 0, len(m))
	for _, l := range m {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
