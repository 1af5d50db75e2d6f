package inquiry

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"

	"covera.app/covera-web/internal/phone"
)

// Kind names the edge function route a submission is sent to.
type Kind string

const (
	KindContact Kind = "contact"
	KindDemo    Kind = "demo-request"
)

const (
	maxNameLen    = 120
	maxCompanyLen = 160
	maxEmailLen   = 254
	maxMessageLen = 4000
)

// VendorCounts are the accepted values of the demo form's vendor-count select.
var VendorCounts = []string{"1-50", "51-200", "201-500", "501-1000", "1000+"}

// ContactRequest is the payload of the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// DemoRequest is the payload of the demo-request form.
type DemoRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	VendorCount string `json:"vendorCount"`
	Message     string `json:"message"`
}

// FieldErrors maps form field names to a human-readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "inquiry: invalid " + strings.Join(parts, "; ")
}

// Normalize trims whitespace and lowercases the email.
func (r ContactRequest) Normalize() ContactRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Company = strings.TrimSpace(r.Company)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

// Validate returns nil when the request may be submitted.
func (r ContactRequest) Validate() FieldErrors {
	fe := FieldErrors{}
	requireText(fe, "name", r.Name, "Please enter your name.", maxNameLen)
	checkEmail(fe, r.Email)
	optionalText(fe, "company", r.Company, maxCompanyLen)
	requireText(fe, "message", r.Message, "Please enter a message.", maxMessageLen)
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Normalize trims whitespace, lowercases the email and formats the phone number.
func (r DemoRequest) Normalize() DemoRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Company = strings.TrimSpace(r.Company)
	r.Phone = phone.Format(r.Phone)
	r.VendorCount = strings.TrimSpace(r.VendorCount)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

// Validate returns nil when the request may be submitted.
func (r DemoRequest) Validate() FieldErrors {
	fe := FieldErrors{}
	requireText(fe, "name", r.Name, "Please enter your name.", maxNameLen)
	checkEmail(fe, r.Email)
	requireText(fe, "company", r.Company, "Please enter your company.", maxCompanyLen)
	if d := phone.Digits(r.Phone); d != "" && len(d) != phone.MaxDigits {
		fe["phone"] = "Please enter a 10 digit phone number."
	}
	if r.VendorCount != "" && !validVendorCount(r.VendorCount) {
		fe["vendorCount"] = "Please choose a vendor range."
	}
	optionalText(fe, "message", r.Message, maxMessageLen)
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func requireText(fe FieldErrors, field, v, missing string, max int) {
	if v == "" {
		fe[field] = missing
		return
	}
	optionalText(fe, field, v, max)
}

func optionalText(fe FieldErrors, field, v string, max int) {
	if utf8.RuneCountInString(v) > max {
		fe[field] = fmt.Sprintf("Please keep this under %d characters.", max)
	}
}

func checkEmail(fe FieldErrors, email string) {
	if email == "" {
		fe["email"] = "Please enter your email."
		return
	}
	if len(email) > maxEmailLen {
		fe["email"] = "Please enter a valid email address."
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		fe["email"] = "Please enter a valid email address."
	}
}

func validVendorCount(v string) bool {
	for _, c := range VendorCounts {
		if c == v {
			return true
		}
	}
	return false
}
