package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustryLookup(t *testing.T) {
	l, ok := Industry("healthcare")
	require.True(t, ok)
	assert.Equal(t, "Healthcare", l.Name)
	assert.Contains(t, l.SEO.Title, "Covera")

	_, ok = Industry("aerospace")
	assert.False(t, ok)
}

func TestSolutionLookup(t *testing.T) {
	l, ok := Solution("coi-tracking")
	require.True(t, ok)
	assert.Equal(t, "COI Tracking", l.Name)

	_, ok = Solution("payroll")
	assert.False(t, ok)
}

func TestLandingsAreComplete(t *testing.T) {
	all := append(Industries(), Solutions()...)
	require.Len(t, all, 8)
	for _, l := range all {
		assert.NotEmpty(t, l.Headline, l.Slug)
		assert.NotEmpty(t, l.Pains, l.Slug)
		assert.NotEmpty(t, l.Features, l.Slug)
		assert.NotEmpty(t, l.Stats, l.Slug)
		assert.NotEmpty(t, l.Testimonial.Quote, l.Slug)
		assert.NotEmpty(t, l.SEO.Description, l.Slug)
	}
}

func TestIndustriesSortedByName(t *testing.T) {
	var names []string
	for _, l := range Industries() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Construction", "Healthcare", "Logistics", "Property Management", "Retail"}, names)
}

func TestPlans(t *testing.T) {
	ps := Plans()
	require.Len(t, ps, 3)
	assert.Equal(t, "Starter", ps[0].Name)
	assert.True(t, ps[2].Custom())
	assert.Equal(t, int64(9900), LowestPrice())

	ps[0].Name = "changed"
	assert.Equal(t, "Starter", Plans()[0].Name)
}

func TestFAQSchema(t *testing.T) {
	qs := FAQSchema(FAQs())
	require.Len(t, qs, len(FAQs()))
	assert.Equal(t, FAQs()[0].Question, qs[0].Question)
}
