package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"covera.app/covera-web/internal/inquiry"
	"covera.app/covera-web/internal/middleware"
)

// Toast tones.
const (
	ToneSuccess = "success"
	ToneError   = "error"
)

// Toast is a transient notification.
type Toast struct {
	Tone    string
	Message string
}

// ToastView renders t, or nothing when t is nil.
func ToastView(t *Toast) g.Node {
	if t == nil {
		return g.Group(nil)
	}
	role := "status"
	if t.Tone == ToneError {
		role = "alert"
	}
	return Div(
		Class("toast toast-"+t.Tone),
		g.Attr("role", role),
		g.Attr("data-toast", t.Tone),
		Span(g.Text(t.Message)),
		Button(Type("button"), Class("toast-close"), g.Attr("aria-label", "Dismiss"), g.Attr("data-dismiss", "toast"), g.Text("×")),
	)
}

// FormView is the state a contact or demo form renders from. Values and Errors are keyed by
// field name; an empty Values map renders a cleared form.
type FormView struct {
	Kind   inquiry.Kind
	Action string
	CSRF   string
	Values map[string]string
	Errors inquiry.FieldErrors
	Toast  *Toast
}

func (f FormView) value(name string) string {
	if f.Values == nil {
		return ""
	}
	return f.Values[name]
}

func (f FormView) formID() string {
	if f.Kind == inquiry.KindDemo {
		return "demo-form"
	}
	return "contact-form"
}

// ContactValues flattens a contact request into form values.
func ContactValues(r inquiry.ContactRequest) map[string]string {
	return map[string]string{"name": r.Name, "email": r.Email, "company": r.Company, "message": r.Message}
}

// DemoValues flattens a demo request into form values.
func DemoValues(r inquiry.DemoRequest) map[string]string {
	return map[string]string{
		"name": r.Name, "email": r.Email, "company": r.Company,
		"phone": r.Phone, "vendorCount": r.VendorCount, "message": r.Message,
	}
}

func formShell(f FormView, fields ...g.Node) g.Node {
	return Form(
		ID(f.formID()),
		Class("inquiry-form"),
		Method("post"),
		Action(f.Action),
		g.Attr("hx-post", f.Action),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type=submit]"),
		g.Attr("novalidate", ""),
		Input(Type("hidden"), Name(middleware.CSRFField), Value(f.CSRF)),
		g.If(f.Toast != nil, ToastView(f.Toast)),
		g.Group(fields),
	)
}

func textField(f FormView, name, label, typ, autocomplete string, required bool) g.Node {
	id := f.formID() + "-" + name
	errMsg, invalid := f.Errors[name]
	return Div(
		Class("field"),
		Label(For(id), g.Text(label), g.If(required, Span(Class("required"), g.Attr("aria-hidden", "true"), g.Text(" *")))),
		Input(
			ID(id), Name(name), Type(typ), Value(f.value(name)),
			g.If(autocomplete != "", AutoComplete(autocomplete)),
			g.If(required, Required()),
			g.If(invalid, g.Attr("aria-invalid", "true")),
			g.If(invalid, g.Attr("aria-describedby", id+"-error")),
		),
		g.If(invalid, fieldError(id, errMsg)),
	)
}

func messageField(f FormView, label string, required bool) g.Node {
	id := f.formID() + "-message"
	errMsg, invalid := f.Errors["message"]
	return Div(
		Class("field"),
		Label(For(id), g.Text(label)),
		Textarea(
			ID(id), Name("message"), g.Attr("rows", "5"),
			g.If(required, Required()),
			g.If(invalid, g.Attr("aria-invalid", "true")),
			g.Text(f.value("message")),
		),
		g.If(invalid, fieldError(id, errMsg)),
	)
}

func fieldError(id, msg string) g.Node {
	return P(ID(id+"-error"), Class("field-error"), g.Text(msg))
}

func submitButton(label string) g.Node {
	return Button(Type("submit"), Class("btn btn-primary"),
		Span(Class("btn-label"), g.Text(label)),
		Span(Class("btn-busy"), g.Attr("aria-hidden", "true"), g.Text("Sending...")),
	)
}

// ContactForm renders the contact form.
func ContactForm(f FormView) g.Node {
	return formShell(f,
		textField(f, "name", "Name", "text", "name", true),
		textField(f, "email", "Work email", "email", "email", true),
		textField(f, "company", "Company", "text", "organization", false),
		messageField(f, "How can we help?", true),
		submitButton("Send message"),
	)
}

// DemoForm renders the demo-request form.
func DemoForm(f FormView) g.Node {
	return formShell(f,
		textField(f, "name", "Full name", "text", "name", true),
		textField(f, "email", "Work email", "email", "email", true),
		textField(f, "company", "Company", "text", "organization", true),
		PhoneField(f.value("phone"), f.Errors["phone"]),
		vendorCountField(f),
		messageField(f, "Anything we should know?", false),
		submitButton("Request demo"),
	)
}

// PhoneField renders the phone input. It reformats itself through /api/phone/format as the
// visitor types.
func PhoneField(value, errMsg string) g.Node {
	id := "demo-form-phone"
	return Div(
		ID("phone-field"),
		Class("field"),
		Label(For(id), g.Text("Phone")),
		Input(
			ID(id), Name("phone"), Type("tel"), Value(value),
			AutoComplete("tel-national"),
			Placeholder("(555) 123-4567"),
			g.Attr("inputmode", "numeric"),
			g.Attr("hx-post", "/api/phone/format"),
			g.Attr("hx-trigger", "input changed delay:300ms"),
			g.Attr("hx-target", "#phone-field"),
			g.Attr("hx-swap", "outerHTML"),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
		),
		g.If(errMsg != "", fieldError(id, errMsg)),
	)
}

func vendorCountField(f FormView) g.Node {
	id := "demo-form-vendorCount"
	current := f.value("vendorCount")
	errMsg, invalid := f.Errors["vendorCount"]
	return Div(
		Class("field"),
		Label(For(id), g.Text("Number of vendors")),
		Select(
			ID(id), Name("vendorCount"),
			Option(Value(""), g.Text("Select a range")),
			g.Group(g.Map(inquiry.VendorCounts, func(v string) g.Node {
				return Option(Value(v), g.If(v == current, Selected()), g.Text(v))
			})),
		),
		g.If(invalid, fieldError(id, errMsg)),
	)
}

// DemoLink links to /demo. With scripts enabled it opens DemoModal instead.
func DemoLink(label, cls string) g.Node {
	return A(Href("/demo"), Class(cls), g.Attr("data-open", "demo"), g.Text(label))
}

// DemoModal is the demo-request dialog included in the layout. It closes itself after
// the demo:close event that a successful submission triggers.
func DemoModal(csrf string) g.Node {
	return g.El("dialog",
		ID("demo-modal"),
		Class("modal"),
		g.Attr("data-modal", "demo"),
		g.Attr("aria-labelledby", "demo-modal-title"),
		Div(Class("modal-header"),
			H2(ID("demo-modal-title"), g.Text("Book a demo")),
			Button(Type("button"), Class("modal-close"), g.Attr("aria-label", "Close"), g.Attr("data-close", "demo"), g.Text("×")),
		),
		P(Class("muted"), g.Text("A 30-minute walkthrough using your own certificates and requirements.")),
		DemoForm(FormView{Kind: inquiry.KindDemo, Action: "/demo", CSRF: csrf}),
	)
}
