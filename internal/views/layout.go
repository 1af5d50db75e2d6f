// Package views renders the site's pages with gomponents.
package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/nav"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page is the per-request shell configuration. SEO tags are not set here; the head
// synchronizer adds them after rendering.
type Page struct {
	Title string
	Path  string
	CSRF  string
	GA4ID string
	Toast *Toast
}

func Layout(p Page, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(p.Title)),
				Link(Rel("icon"), Href("/assets/img/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/assets/css/site.css")),
				Script(Src(htmxSrc), Defer()),
				Script(Src("/assets/js/site.js"), Defer()),
				g.If(p.GA4ID != "", analytics(p.GA4ID)),
			),
			Body(
				Class("site"),
				g.Attr("hx-headers", fmt.Sprintf(`{"X-CSRF-Token": %q}`, p.CSRF)),
				topbar(p.Path),
				Div(ID("toast-region"), Class("toast-region"), g.Attr("aria-live", "polite"),
					g.If(p.Toast != nil, ToastView(p.Toast)),
				),
				Main(ID("main"), g.Group(content)),
				siteFooter(),
				g.If(p.Path != "/demo", DemoModal(p.CSRF)),
			),
		),
	})
}

func analytics(id string) g.Node {
	return g.Group([]g.Node{
		Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+id)),
		Script(g.Raw(fmt.Sprintf(`window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments)}gtag("js",new Date());gtag("config",%q);`, id))),
	})
}

func Logo() g.Node {
	return A(Href("/"), Class("logo"), g.Attr("aria-label", "Covera home"),
		Span(Class("logo-mark"), g.Attr("aria-hidden", "true")),
		Span(Class("logo-word"), g.Text("Covera")),
	)
}

func topbar(path string) g.Node {
	return Header(
		Class("topbar"),
		Div(
			Class("container topbar-inner"),
			Logo(),
			Nav(
				g.Attr("aria-label", "Main"),
				Ul(Class("menu"),
					g.Group(g.Map(nav.Build(path), navItem)),
				),
			),
			DemoLink("Book a demo", "btn btn-primary btn-sm"),
		),
	)
}

func navItem(it nav.RenderedItem) g.Node {
	if len(it.Children) == 0 {
		return Li(A(Href(it.Href), g.If(it.Active, Class("active")), g.If(it.Active, g.Attr("aria-current", "page")), g.Text(it.Label)))
	}
	return Li(Class("dropdown"),
		g.El("details",
			g.El("summary", g.If(it.Active, Class("active")), g.Text(it.Label)),
			Ul(Class("dropdown-menu"),
				g.Group(g.Map(it.Children, func(c nav.RenderedItem) g.Node {
					return Li(A(Href(c.Href), g.If(c.Active, Class("active")), g.Text(c.Label)))
				})),
			),
		),
	)
}

func siteFooter() g.Node {
	columns := []struct {
		Heading string
		Items   []nav.Item
	}{
		{"Solutions", nav.Main[0].Children},
		{"Industries", nav.Main[1].Children},
		{"Company", []nav.Item{
			{Path: "/about", Label: "About"},
			{Path: "/pricing", Label: "Pricing"},
			{Path: "/blog", Label: "Blog"},
			{Path: "/contact", Label: "Contact"},
		}},
	}
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Logo(),
				P(Class("muted"), g.Text("Vendor compliance and insurance tracking for teams that work with contractors.")),
			),
			g.Group(g.Map(columns, func(col struct {
				Heading string
				Items   []nav.Item
			}) g.Node {
				return Div(
					H3(g.Text(col.Heading)),
					Ul(g.Group(g.Map(col.Items, func(it nav.Item) g.Node {
						return Li(A(Href(it.Path), g.Text(it.Label)))
					}))),
				)
			})),
		),
		Div(Class("container footer-legal"),
			Small(g.Text("© Covera, Inc. All rights reserved.")),
		),
	)
}

// Breadcrumbs renders a breadcrumb trail. Section crumbs without a page are plain text.
func Breadcrumbs(crumbs []nav.Crumb) g.Node {
	if len(crumbs) < 2 {
		return g.Group(nil)
	}
	return Nav(Class("breadcrumbs"), g.Attr("aria-label", "Breadcrumb"),
		Ol(g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
			switch {
			case c.Active:
				return Li(Span(g.Attr("aria-current", "page"), g.Text(c.Label)))
			case !c.Linkable():
				return Li(Span(g.Text(c.Label)))
			default:
				return Li(A(Href(c.Href), g.Text(c.Label)))
			}
		}))),
	)
}
