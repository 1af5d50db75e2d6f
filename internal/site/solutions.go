package site

import "covera.app/covera-web/internal/seo"

var solutions = map[string]Landing{
	"coi-tracking": {
		Slug:        "coi-tracking",
		Name:        "COI Tracking",
		Headline:    "Certificate of insurance tracking on autopilot",
		Subheadline: "Collect, read and monitor every vendor certificate without a spreadsheet.",
		HeroImage:   "/assets/img/solutions/coi-tracking.jpg",
		Pains: []Pain{
			{Title: "Manual data entry", Detail: "Someone retypes limits and dates from every PDF."},
			{Title: "Missed expirations", Detail: "Renewals slip because nobody had a reminder."},
			{Title: "No single source", Detail: "Certificates live across inboxes and shared drives."},
		},
		Features: []Feature{
			{Icon: "scan", Title: "Automatic extraction", Detail: "Limits, dates and carriers are read from uploaded certificates."},
			{Icon: "check-circle", Title: "Requirement checks", Detail: "Each certificate is compared with your contract minimums."},
			{Icon: "bell", Title: "Renewal reminders", Detail: "Vendors are reminded 30, 14 and 1 day before expiration."},
			{Icon: "archive", Title: "Full history", Detail: "Every certificate version is kept for audits."},
		},
		Stats: []Stat{
			{Value: "80%", Label: "less time spent on certificates"},
			{Value: "30 days", Label: "of warning before any lapse"},
		},
		Testimonial: Testimonial{
			Quote:   "We went from three spreadsheets to zero in our first month.",
			Author:  "Tom Becker",
			Role:    "Procurement Lead",
			Company: "Summit Facilities",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Automated COI Tracking Software"),
			Description: "Automate certificate of insurance tracking. Extract limits, check requirements and send renewal reminders with Covera.",
			Keywords:    "COI tracking software, certificate of insurance tracking, automated COI management",
		},
	},
	"vendor-onboarding": {
		Slug:        "vendor-onboarding",
		Name:        "Vendor Onboarding",
		Headline:    "Onboard vendors in days instead of weeks",
		Subheadline: "Send one link. Vendors upload what you need and you approve with confidence.",
		HeroImage:   "/assets/img/solutions/vendor-onboarding.jpg",
		Pains: []Pain{
			{Title: "Back-and-forth email", Detail: "Every missing document means another thread."},
			{Title: "Inconsistent requirements", Detail: "Each team asks vendors for something different."},
			{Title: "Slow approvals", Detail: "Work waits while paperwork sits in a queue."},
		},
		Features: []Feature{
			{Icon: "link", Title: "Invite links", Detail: "Vendors receive a single link with everything they need to provide."},
			{Icon: "list-checks", Title: "Requirement templates", Detail: "Reuse onboarding checklists by vendor type."},
			{Icon: "user-check", Title: "Approval workflow", Detail: "Route vendors to the right reviewer automatically."},
			{Icon: "mail", Title: "Status updates", Detail: "Vendors see what is missing without calling you."},
		},
		Stats: []Stat{
			{Value: "4 days", Label: "average time to approval"},
			{Value: "70%", Label: "fewer onboarding emails"},
		},
		Testimonial: Testimonial{
			Quote:   "Vendors tell us our onboarding is the easiest they have seen.",
			Author:  "Alicia Moreno",
			Role:    "Vendor Manager",
			Company: "Parkview Hospitality",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Vendor Onboarding Software"),
			Description: "Streamline vendor onboarding with invite links, requirement templates and approval workflows. Get vendors working sooner with Covera.",
			Keywords:    "vendor onboarding software, supplier onboarding, vendor management",
		},
	},
	"compliance-reporting": {
		Slug:        "compliance-reporting",
		Name:        "Compliance Reporting",
		Headline:    "Audit-ready compliance reports in one click",
		Subheadline: "Know your vendor risk at a glance and prove it to auditors, owners and insurers.",
		HeroImage:   "/assets/img/solutions/compliance-reporting.jpg",
		Pains: []Pain{
			{Title: "Reports take days", Detail: "Assembling status from PDFs eats whole weeks."},
			{Title: "No trend data", Detail: "Nobody can say if compliance is improving."},
			{Title: "Audit scrambles", Detail: "Auditors ask for history you never recorded."},
		},
		Features: []Feature{
			{Icon: "pie-chart", Title: "Live dashboard", Detail: "Compliance by vendor, location and requirement."},
			{Icon: "trending-up", Title: "Trends", Detail: "Track compliance rates month over month."},
			{Icon: "file-spreadsheet", Title: "Exports", Detail: "CSV and PDF exports for auditors and owners."},
			{Icon: "history", Title: "Audit trail", Detail: "Every reminder, waiver and approval is recorded."},
		},
		Stats: []Stat{
			{Value: "1 click", Label: "to an audit-ready report"},
			{Value: "12 mo", Label: "of compliance history on hand"},
		},
		Testimonial: Testimonial{
			Quote:   "Our insurer asked for vendor documentation and we had it to them before lunch.",
			Author:  "Grace Kim",
			Role:    "CFO",
			Company: "Meridian Property Group",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Vendor Compliance Reporting"),
			Description: "Generate audit-ready vendor compliance reports. Dashboards, trends and a full audit trail with Covera.",
			Keywords:    "compliance reporting, vendor risk reporting, insurance audit",
		},
	},
}
