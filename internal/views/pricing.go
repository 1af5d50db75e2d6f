package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/format"
	"covera.app/covera-web/internal/site"
)

func PricingPage(plans []site.Plan, faqs []site.FAQ) g.Node {
	return g.Group([]g.Node{
		Section(Class("section container pricing-head"),
			H1(g.Text("Simple pricing for every portfolio")),
			P(Class("lead"), g.Text("Start with a free trial. Upgrade when your vendor list grows.")),
		),
		PricingTable(plans),
		FAQList(faqs),
		CTABand("Not sure which plan fits?", "We will size it with you on a short call."),
	})
}

func PricingTable(plans []site.Plan) g.Node {
	return Section(Class("section"),
		Div(Class("container plan-grid"),
			g.Group(g.Map(plans, planCard)),
		),
	)
}

func planCard(p site.Plan) g.Node {
	cls := "card plan"
	if p.Highlighted {
		cls += " plan-highlighted"
	}
	price := Span(Class("plan-price"), g.Text("Custom"))
	if !p.Custom() {
		price = Span(Class("plan-price"),
			g.Text(format.FmtCurrency(p.MonthlyCents, "USD")),
			Small(g.Text("/month")),
		)
	}
	return Div(
		Class(cls),
		g.Attr("data-plan", p.Name),
		g.If(p.Highlighted, Span(Class("badge"), g.Text("Most popular"))),
		H2(g.Text(p.Name)),
		P(Class("muted"), g.Text(p.Tagline)),
		price,
		P(Class("plan-limit"), g.Text(p.VendorLimit)),
		Ul(Class("checklist"),
			g.Group(g.Map(p.Features, func(f string) g.Node { return Li(g.Text(f)) })),
		),
		A(Href(p.CTAHref), Class("btn btn-primary"), g.Text(p.CTA)),
	)
}

// FAQList renders an accordion; only one item opens at a time via the shared name.
func FAQList(faqs []site.FAQ) g.Node {
	return Section(Class("section container faq"),
		ID("faq"),
		H2(g.Text("Frequently asked questions")),
		g.Group(g.Map(faqs, func(f site.FAQ) g.Node {
			return g.El("details", Class("faq-item"), Name("faq"),
				g.El("summary", g.Text(f.Question)),
				P(g.Text(f.Answer)),
			)
		})),
	)
}
