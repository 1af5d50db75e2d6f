package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/blog"
	"covera.app/covera-web/internal/nav"
	"covera.app/covera-web/internal/site"
)

var homeFeatures = []site.Feature{
	{Icon: "scan", Title: "Automatic COI reading", Detail: "Upload a certificate and Covera extracts carriers, limits and dates."},
	{Icon: "check-circle", Title: "Requirement checks", Detail: "Every certificate is compared with the contract it belongs to."},
	{Icon: "bell", Title: "Renewal reminders", Detail: "Vendors and brokers are reminded before policies lapse."},
	{Icon: "users", Title: "Vendor portal", Detail: "Vendors upload documents themselves. No logins to manage."},
	{Icon: "bar-chart", Title: "Compliance reporting", Detail: "Live status by vendor, location and requirement."},
	{Icon: "history", Title: "Audit trail", Detail: "Every reminder, waiver and approval is recorded."},
}

var homeStats = []site.Stat{
	{Value: "80%", Label: "less time spent chasing certificates"},
	{Value: "95%", Label: "average vendor compliance"},
	{Value: "2 weeks", Label: "to go live"},
}

func HomePage(latest []blog.Post) g.Node {
	return g.Group([]g.Node{
		Hero("Vendor compliance, handled",
			"Stop chasing certificates of insurance",
			"Covera collects, verifies and tracks vendor insurance so your team knows who is covered before work begins.",
			"/assets/img/hero-dashboard.png",
			CTA{Label: "Book a demo", Href: "/demo"},
			CTA{Label: "See how it works", Href: "/features"},
		),
		StatBand(homeStats),
		FeatureGrid("Everything you need to manage vendor risk", homeFeatures),
		landingLinks("Built for your industry", "/industries/", site.Industries()),
		g.If(len(latest) > 0, Section(Class("section"),
			Div(Class("container"),
				H2(g.Text("From the blog")),
				PostCards(latest),
			),
		)),
		CTABand("See Covera with your own vendors", "A 30-minute walkthrough using your certificates and requirements."),
	})
}

func landingLinks(heading, prefix string, landings []site.Landing) g.Node {
	return Section(Class("section"),
		Div(Class("container"),
			H2(g.Text(heading)),
			Ul(Class("link-grid"),
				g.Group(g.Map(landings, func(l site.Landing) g.Node {
					return Li(Class("card"), A(Href(prefix+l.Slug), H3(g.Text(l.Name)), P(g.Text(l.Headline))))
				})),
			),
		),
	)
}

func FeaturesPage() g.Node {
	return g.Group([]g.Node{
		Hero("Platform", "One place for every vendor certificate",
			"From collection to renewal, Covera automates the paperwork behind vendor compliance.",
			"", CTA{Label: "Book a demo", Href: "/demo"}),
		FeatureGrid("Features", homeFeatures),
		landingLinks("Solutions", "/solutions/", site.Solutions()),
		CTABand("Ready to retire the spreadsheet?", "Most teams are live within two weeks."),
	})
}

func AboutPage() g.Node {
	return g.Group([]g.Node{
		Hero("About Covera", "We make vendor risk visible",
			"Covera started with property and construction teams who were tracking insurance in spreadsheets. We built the tool we wished they had.",
			""),
		Section(Class("section prose container"),
			H2(g.Text("Our mission")),
			P(g.Text("Every company that hires vendors carries their risk. Our mission is to make sure that risk is insured, documented and easy to prove.")),
			H2(g.Text("What we believe")),
			Ul(
				Li(g.Text("Compliance should run in the background, not in someone's inbox.")),
				Li(g.Text("Vendors are partners. Making their paperwork easy makes everyone compliant faster.")),
				Li(g.Text("Audit readiness is a side effect of good records.")),
			),
		),
		CTABand("Talk to our team", "We are happy to walk through your current process."),
	})
}

// LandingPage renders an industry or solution page.
func LandingPage(l site.Landing, crumbs []nav.Crumb) g.Node {
	return g.Group([]g.Node{
		Div(Class("container"), Breadcrumbs(crumbs)),
		Hero(l.Name, l.Headline, l.Subheadline, l.HeroImage,
			CTA{Label: "Book a demo", Href: "/demo"},
			CTA{Label: "See pricing", Href: "/pricing"},
		),
		PainList(l.Pains),
		FeatureGrid("How Covera helps", l.Features),
		StatBand(l.Stats),
		TestimonialCard(l.Testimonial),
		CTABand("See Covera for "+l.Name, "Get a walkthrough tailored to your vendors and requirements."),
	})
}

func ContactPage(f FormView) g.Node {
	return Section(Class("section container contact"),
		Div(Class("contact-grid"),
			Div(
				H1(g.Text("Contact us")),
				P(Class("lead"), g.Text("Questions about Covera, pricing or a partnership? Send us a note and we will reply within one business day.")),
				Ul(Class("contact-list"),
					Li(Strong(g.Text("Sales: ")), A(Href("mailto:sales@covera.app"), g.Text("sales@covera.app"))),
					Li(Strong(g.Text("Support: ")), A(Href("mailto:support@covera.app"), g.Text("support@covera.app"))),
				),
			),
			ContactForm(f),
		),
	)
}

// DemoPage renders the demo form as a standalone page. Elsewhere the same form lives in
// DemoModal.
func DemoPage(f FormView) g.Node {
	return Section(Class("section container demo"),
		H1(g.Text("Book a demo")),
		P(Class("lead"), g.Text("See how Covera tracks vendor insurance for teams like yours.")),
		DemoForm(f),
	)
}

func NotFoundPage() g.Node {
	return Section(Class("section container not-found"),
		H1(g.Text("Page not found")),
		P(g.Text("The page you are looking for does not exist or has moved.")),
		A(Href("/"), Class("btn btn-primary"), g.Text("Back to home")),
	)
}
