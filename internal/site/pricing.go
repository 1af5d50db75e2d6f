package site

import "covera.app/covera-web/internal/seo"

// Plan is a pricing tier. MonthlyCents of zero means the plan is quoted.
type Plan struct {
	Name         string
	Tagline      string
	MonthlyCents int64
	VendorLimit  string
	Features     []string
	CTA          string
	CTAHref      string
	Highlighted  bool
}

// Custom reports whether the plan has no list price.
func (p Plan) Custom() bool { return p.MonthlyCents == 0 }

// FAQ is a pricing question.
type FAQ struct {
	Question string
	Answer   string
}

var plans = []Plan{
	{
		Name:         "Starter",
		Tagline:      "For teams replacing their first spreadsheet.",
		MonthlyCents: 9900,
		VendorLimit:  "Up to 50 vendors",
		Features: []string{
			"COI collection and storage",
			"Expiration reminders",
			"Vendor upload portal",
			"Email support",
		},
		CTA:     "Start free trial",
		CTAHref: "/demo",
	},
	{
		Name:         "Professional",
		Tagline:      "For growing portfolios with real vendor risk.",
		MonthlyCents: 29900,
		VendorLimit:  "Up to 500 vendors",
		Features: []string{
			"Everything in Starter",
			"Automatic certificate extraction",
			"Requirement templates by vendor tier",
			"Compliance reporting",
			"Priority support",
		},
		CTA:         "Book a demo",
		CTAHref:     "/demo",
		Highlighted: true,
	},
	{
		Name:        "Enterprise",
		Tagline:     "For multi-entity organizations.",
		VendorLimit: "Unlimited vendors",
		Features: []string{
			"Everything in Professional",
			"SSO and role-based access",
			"Custom integrations",
			"Dedicated success manager",
		},
		CTA:     "Contact sales",
		CTAHref: "/contact",
	},
}

var faqs = []FAQ{
	{Question: "Is there a free trial?", Answer: "Yes. Starter and Professional include a 14-day free trial. No credit card is required."},
	{Question: "What counts as a vendor?", Answer: "Any company or contractor you track insurance for. Inactive vendors do not count toward your limit."},
	{Question: "Can I change plans later?", Answer: "You can upgrade or downgrade at any time. Changes are prorated on your next invoice."},
	{Question: "Do vendors pay anything?", Answer: "No. Vendors upload documents through the portal at no cost."},
	{Question: "Do you offer annual billing?", Answer: "Annual plans are billed up front and include two months free."},
	{Question: "How is my data protected?", Answer: "Data is encrypted in transit and at rest, and access is limited to the users you invite."},
}

// Plans returns the pricing plans in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// FAQs returns the pricing FAQ in display order.
func FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

// FAQSchema converts faqs to the entries of an FAQPage.
func FAQSchema(faqs []FAQ) []seo.Question {
	out := make([]seo.Question, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, seo.Question{Question: f.Question, Answer: f.Answer})
	}
	return out
}

// LowestPrice returns the cheapest listed monthly price in cents.
func LowestPrice() int64 {
	var low int64
	for _, p := range plans {
		if p.Custom() {
			continue
		}
		if low == 0 || p.MonthlyCents < low {
			low = p.MonthlyCents
		}
	}
	return low
}
