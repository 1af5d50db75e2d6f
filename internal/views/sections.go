package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/site"
)

// CTA is a call-to-action link.
type CTA struct {
	Label string
	Href  string
}

func Hero(eyebrow, headline, sub, image string, ctas ...CTA) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				g.If(eyebrow != "", P(Class("eyebrow"), g.Text(eyebrow))),
				H1(g.Text(headline)),
				P(Class("lead"), g.Text(sub)),
				Div(Class("hero-actions"),
					g.Group(g.Map(ctas, func(c CTA) g.Node {
						if c.Href == "/demo" {
							return DemoLink(c.Label, "btn btn-primary")
						}
						return A(Href(c.Href), Class("btn btn-outline"), g.Text(c.Label))
					})),
				),
			),
			g.If(image != "", Img(Class("hero-image"), Src(image), Alt(""), Loading("eager"))),
		),
	)
}

func PainList(pains []site.Pain) g.Node {
	return Section(
		Class("section pains"),
		Div(Class("container"),
			H2(g.Text("Sound familiar?")),
			Ul(Class("pain-grid"),
				g.Group(g.Map(pains, func(p site.Pain) g.Node {
					return Li(Class("card"), H3(g.Text(p.Title)), P(g.Text(p.Detail)))
				})),
			),
		),
	)
}

func FeatureGrid(heading string, features []site.Feature) g.Node {
	return Section(
		ID("features"),
		Class("section features"),
		Div(Class("container"),
			H2(g.Text(heading)),
			Div(Class("feature-grid"),
				g.Group(g.Map(features, func(f site.Feature) g.Node {
					return Div(
						Class("card feature"),
						Span(Class("icon icon-"+f.Icon), g.Attr("aria-hidden", "true")),
						H3(g.Text(f.Title)),
						P(g.Text(f.Detail)),
					)
				})),
			),
		),
	)
}

func StatBand(stats []site.Stat) g.Node {
	return Section(
		Class("stat-band"),
		Div(Class("container stat-grid"),
			g.Group(g.Map(stats, func(s site.Stat) g.Node {
				return Div(Class("stat"),
					Strong(Class("stat-value"), g.Text(s.Value)),
					Span(Class("stat-label"), g.Text(s.Label)),
				)
			})),
		),
	)
}

func TestimonialCard(t site.Testimonial) g.Node {
	return Section(
		Class("section testimonial"),
		Div(Class("container"),
			g.El("figure",
				g.El("blockquote", P(g.Text(t.Quote))),
				g.El("figcaption",
					Strong(g.Text(t.Author)),
					Span(g.Text(", "+t.Role+", "+t.Company)),
				),
			),
		),
	)
}

func CTABand(headline, sub string) g.Node {
	return Section(
		Class("cta-band"),
		Div(Class("container"),
			H2(g.Text(headline)),
			P(g.Text(sub)),
			Div(Class("hero-actions"),
				DemoLink("Book a demo", "btn btn-primary"),
				A(Href("/pricing"), Class("btn btn-outline"), g.Text("See pricing")),
			),
		),
	)
}
