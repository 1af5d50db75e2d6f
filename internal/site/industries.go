package site

import "covera.app/covera-web/internal/seo"

var industries = map[string]Landing{
	"construction": {
		Slug:        "construction",
		Name:        "Construction",
		Headline:    "Keep every subcontractor insured before they step on site",
		Subheadline: "Collect COIs from subs, verify limits against each project, and hold pay applications until coverage is current.",
		HeroImage:   "/assets/img/industries/construction.jpg",
		Pains: []Pain{
			{Title: "Subs change weekly", Detail: "New crews arrive faster than anyone can review their paperwork."},
			{Title: "Project-specific limits", Detail: "Each owner contract sets different minimums and endorsements."},
			{Title: "Claims land on the GC", Detail: "An uninsured sub turns a jobsite injury into your loss."},
		},
		Features: []Feature{
			{Icon: "hard-hat", Title: "Project requirements", Detail: "Attach insurance requirements to each job and check every sub against them."},
			{Icon: "file-check", Title: "Endorsement review", Detail: "Track additional insured and waiver of subrogation endorsements alongside the COI."},
			{Icon: "bell", Title: "Expiration alerts", Detail: "Subs and their brokers get reminders before policies lapse."},
			{Icon: "lock", Title: "Pay application holds", Detail: "Flag non-compliant subs before payments go out."},
		},
		Stats: []Stat{
			{Value: "92%", Label: "of subs compliant within 30 days"},
			{Value: "6 hrs", Label: "saved per project manager each week"},
		},
		Testimonial: Testimonial{
			Quote:   "We stopped chasing certificates over email. Our PMs see compliance status right next to each sub.",
			Author:  "Dana Whitfield",
			Role:    "Risk Manager",
			Company: "Northline Builders",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Construction Subcontractor COI Tracking"),
			Description: "Track subcontractor certificates of insurance across every project. Verify limits, endorsements and expirations automatically with Covera.",
			Keywords:    "subcontractor COI tracking, construction insurance compliance, general contractor risk",
		},
	},
	"property-management": {
		Slug:        "property-management",
		Name:        "Property Management",
		Headline:    "Vendor compliance across your whole portfolio",
		Subheadline: "One vendor record for every building, with requirements that match the risk of the work.",
		HeroImage:   "/assets/img/industries/property-management.jpg",
		Pains: []Pain{
			{Title: "Hundreds of vendors", Detail: "Each property keeps its own list and its own spreadsheet."},
			{Title: "One size fits none", Detail: "The same requirements apply to janitors and roofers."},
			{Title: "Owner reporting", Detail: "Owners ask for proof of vendor coverage at every review."},
		},
		Features: []Feature{
			{Icon: "building", Title: "Portfolio view", Detail: "See compliance by property, region or owner."},
			{Icon: "layers", Title: "Risk tiers", Detail: "Set requirements by trade so each vendor meets the right bar."},
			{Icon: "users", Title: "Vendor self-service", Detail: "Vendors upload renewals through a branded portal."},
			{Icon: "bar-chart", Title: "Owner reports", Detail: "Export compliance reports per property in one click."},
		},
		Stats: []Stat{
			{Value: "3x", Label: "faster vendor onboarding"},
			{Value: "40+", Label: "properties managed per coordinator"},
		},
		Testimonial: Testimonial{
			Quote:   "Our owners used to wait a week for vendor reports. Now we send them the same afternoon.",
			Author:  "Marcus Lee",
			Role:    "Director of Operations",
			Company: "Harbor Residential",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Vendor Compliance for Property Management"),
			Description: "Manage vendor insurance compliance across your property portfolio. Tiered requirements, vendor portal and owner-ready reports.",
			Keywords:    "property management vendor compliance, vendor insurance tracking, COI management",
		},
	},
	"healthcare": {
		Slug:        "healthcare",
		Name:        "Healthcare",
		Headline:    "Credential and insure every vendor that enters your facility",
		Subheadline: "Insurance, credentials and agreements in a single vendor record that is ready for survey.",
		HeroImage:   "/assets/img/industries/healthcare.jpg",
		Pains: []Pain{
			{Title: "Scattered records", Detail: "Insurance, credentials and BAAs live in different systems."},
			{Title: "Patient-area access", Detail: "Vendors in clinical areas need more than a certificate."},
			{Title: "Survey pressure", Detail: "Surveys demand documentation on short notice."},
		},
		Features: []Feature{
			{Icon: "shield", Title: "Professional liability", Detail: "Track clinical service vendors against professional liability minimums."},
			{Icon: "id-card", Title: "Credential tracking", Detail: "Store attestations and expirations next to insurance records."},
			{Icon: "file-text", Title: "Agreement library", Detail: "Keep business associate agreements with each vendor."},
			{Icon: "download", Title: "Survey exports", Detail: "Produce vendor documentation for surveyors in minutes."},
		},
		Stats: []Stat{
			{Value: "1 day", Label: "to prepare vendor files for survey"},
			{Value: "100%", Label: "of clinical vendors credentialed"},
		},
		Testimonial: Testimonial{
			Quote:   "Survey prep used to take my team two weeks. With Covera it took an afternoon.",
			Author:  "Priya Raman",
			Role:    "Compliance Officer",
			Company: "Lakeside Health",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Healthcare Vendor Credentialing & COI Tracking"),
			Description: "Vendor credentialing and insurance tracking for hospitals and clinics. Keep every vendor survey-ready with Covera.",
			Keywords:    "healthcare vendor credentialing, hospital vendor compliance, vendor insurance tracking",
		},
	},
	"logistics": {
		Slug:        "logistics",
		Name:        "Logistics",
		Headline:    "Verify carrier insurance before the load moves",
		Subheadline: "Track auto liability, cargo and general liability for every carrier and broker you dispatch.",
		HeroImage:   "/assets/img/industries/logistics.jpg",
		Pains: []Pain{
			{Title: "Carriers come and go", Detail: "Spot-market carriers need to be checked on the same day."},
			{Title: "Cargo exposure", Detail: "An expired cargo policy leaves freight uninsured in transit."},
			{Title: "Fraud risk", Detail: "Altered certificates are hard to spot by eye."},
		},
		Features: []Feature{
			{Icon: "truck", Title: "Carrier onboarding", Detail: "Collect certificates as part of carrier setup."},
			{Icon: "package", Title: "Cargo coverage", Detail: "Check cargo limits against the value of each lane."},
			{Icon: "search", Title: "Broker verification", Detail: "Confirm coverage directly with the issuing broker."},
			{Icon: "bell", Title: "Same-day alerts", Detail: "Dispatch knows when a carrier falls out of compliance."},
		},
		Stats: []Stat{
			{Value: "15 min", Label: "to approve a new carrier"},
			{Value: "0", Label: "loads moved with lapsed cargo coverage"},
		},
		Testimonial: Testimonial{
			Quote:   "Dispatch checks compliance in the same screen where they book the load.",
			Author:  "Luis Ortega",
			Role:    "VP Carrier Relations",
			Company: "Crossroads Freight",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Carrier Insurance Tracking for Logistics"),
			Description: "Verify carrier and broker insurance before every load. Cargo, auto and general liability tracking for logistics teams.",
			Keywords:    "carrier insurance verification, logistics compliance, cargo insurance tracking",
		},
	},
	"retail": {
		Slug:        "retail",
		Name:        "Retail",
		Headline:    "Insured vendors in every store, every time",
		Subheadline: "Maintenance, merchandising and delivery vendors tracked across all of your locations.",
		HeroImage:   "/assets/img/industries/retail.jpg",
		Pains: []Pain{
			{Title: "Many locations", Detail: "Store managers approve vendors without central visibility."},
			{Title: "Seasonal surges", Detail: "Holiday vendors onboard in days, not weeks."},
			{Title: "Premises liability", Detail: "Customer injuries caused by vendors become your claim."},
		},
		Features: []Feature{
			{Icon: "store", Title: "Store-level access", Detail: "Store managers see which vendors are cleared for their location."},
			{Icon: "calendar", Title: "Seasonal onboarding", Detail: "Bulk invite vendors ahead of peak season."},
			{Icon: "shield-check", Title: "Central requirements", Detail: "Set requirements once and apply them chain-wide."},
			{Icon: "bar-chart", Title: "Regional reporting", Detail: "Compare compliance across regions and districts."},
		},
		Stats: []Stat{
			{Value: "600+", Label: "stores on a single program"},
			{Value: "98%", Label: "vendor compliance rate"},
		},
		Testimonial: Testimonial{
			Quote:   "Store managers finally know which vendors they can let in the back door.",
			Author:  "Erin Walsh",
			Role:    "Facilities Manager",
			Company: "Brightway Stores",
		},
		SEO: seo.PageMetadata{
			Title:       seo.Title("Retail Vendor Insurance Compliance"),
			Description: "Track vendor insurance across every store location. Central requirements, store-level visibility and seasonal onboarding.",
			Keywords:    "retail vendor compliance, multi-location COI tracking, vendor insurance",
		},
	},
}
