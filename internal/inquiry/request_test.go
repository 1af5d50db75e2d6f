package inquiry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactValidate(t *testing.T) {
	ok := ContactRequest{Name: " Sam ", Email: " Sam@Example.com ", Message: " Hello "}.Normalize()
	assert.Nil(t, ok.Validate())
	assert.Equal(t, "sam@example.com", ok.Email)
	assert.Equal(t, "Sam", ok.Name)

	fe := ContactRequest{}.Normalize().Validate()
	require.NotNil(t, fe)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "message")
	assert.NotContains(t, fe, "company")
}

func TestEmailRules(t *testing.T) {
	bad := []string{"plain", "a@b", "Sam <sam@example.com>", "a@@b.com", strings.Repeat("a", 250) + "@b.co"}
	for _, e := range bad {
		fe := ContactRequest{Name: "x", Email: e, Message: "m"}.Validate()
		assert.Contains(t, fe, "email", e)
	}
	fe := ContactRequest{Name: "x", Email: "ops@vendor.co.uk", Message: "m"}.Validate()
	assert.Nil(t, fe)
}

func TestDemoValidate(t *testing.T) {
	req := DemoRequest{Name: "Lee", Email: "lee@acme.com", Company: "Acme", Phone: "5550109999", VendorCount: "201-500"}.Normalize()
	assert.Equal(t, "(555) 010-9999", req.Phone)
	assert.Nil(t, req.Validate())

	fe := DemoRequest{Name: "Lee", Email: "lee@acme.com", Phone: "555", VendorCount: "lots"}.Normalize().Validate()
	require.NotNil(t, fe)
	assert.Contains(t, fe, "company")
	assert.Contains(t, fe, "phone")
	assert.Contains(t, fe, "vendorCount")
	assert.NotContains(t, fe, "message")
}

func TestLengthLimits(t *testing.T) {
	fe := ContactRequest{Name: strings.Repeat("n", maxNameLen+1), Email: "a@b.co", Message: "m"}.Validate()
	assert.Contains(t, fe["name"], "under 120")
}

func TestFieldErrorsMessageIsSorted(t *testing.T) {
	fe := FieldErrors{"name": "missing", "email": "bad"}
	assert.Equal(t, "inquiry: invalid email: bad; name: missing", fe.Error())
}
