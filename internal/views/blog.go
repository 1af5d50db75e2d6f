package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/blog"
	"covera.app/covera-web/internal/format"
	"covera.app/covera-web/internal/nav"
)

// BlogFilter is the current blog index filter.
type BlogFilter struct {
	Category   string
	Search     string
	Categories []string
}

func BlogIndex(posts []blog.Post, f BlogFilter) g.Node {
	return Section(Class("section container blog-index"),
		H1(g.Text("Vendor compliance blog")),
		P(Class("lead"), g.Text("Guides, checklists and playbooks for managing vendor insurance.")),
		Form(Class("blog-filter"), Method("get"), Action("/blog"),
			g.Attr("role", "search"),
			Input(Type("search"), Name("q"), Value(f.Search), Placeholder("Search articles"), g.Attr("aria-label", "Search articles")),
			Select(Name("category"), g.Attr("aria-label", "Category"),
				Option(Value(""), g.Text("All categories")),
				g.Group(g.Map(f.Categories, func(c string) g.Node {
					return Option(Value(c), g.If(c == f.Category, Selected()), g.Text(c))
				})),
			),
			Button(Type("submit"), Class("btn btn-outline btn-sm"), g.Text("Filter")),
		),
		g.If(len(posts) == 0, P(Class("empty"), g.Text("No articles match your filter."))),
		PostCards(posts),
	)
}

func PostCards(posts []blog.Post) g.Node {
	return Div(Class("post-grid"),
		g.Group(g.Map(posts, func(p blog.Post) g.Node {
			return Article(Class("card post-card"),
				g.If(p.Image != "", Img(Src(p.Image), Alt(""), Loading("lazy"))),
				P(Class("eyebrow"), g.Text(p.Category)),
				H3(A(Href("/blog/"+p.Slug), g.Text(p.Title))),
				P(g.Text(p.Summary)),
				byline(p),
			)
		})),
	)
}

func byline(p blog.Post) g.Node {
	return P(Class("byline muted"),
		g.Text(p.Author+" · "),
		g.El("time", g.Attr("datetime", format.ISODate(p.PublishedAt)), g.Text(format.FmtDate(p.PublishedAt))),
		g.Text(" · "+format.ReadingTime(p.ReadingMinutes)),
	)
}

// PostBody renders an article. p.HTML is sanitized when the post is loaded.
func PostBody(p blog.Post, crumbs []nav.Crumb, related []blog.Post) g.Node {
	return g.Group([]g.Node{
		Article(Class("section container post"),
			Breadcrumbs(crumbs),
			Header(
				P(Class("eyebrow"), g.Text(p.Category)),
				H1(g.Text(p.Title)),
				byline(p),
			),
			g.If(p.Image != "", Img(Class("post-image"), Src(p.Image), Alt(""))),
			Div(Class("prose"), g.Raw(string(p.HTML))),
			g.If(len(p.Tags) > 0, Ul(Class("tags"),
				g.Group(g.Map(p.Tags, func(t string) g.Node { return Li(Class("tag"), g.Text(t)) })),
			)),
		),
		g.If(len(related) > 0, Section(Class("section container"),
			H2(g.Text("Related articles")),
			PostCards(related),
		)),
		CTABand("Put these practices on autopilot", "Covera tracks every certificate so your team does not have to."),
	})
}
