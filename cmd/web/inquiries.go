package main

import (
    "context"
    "errors"
    "net/http"
    "time"

    "go.uber.org/zap"
    g "maragu.dev/gomponents"

    "covera.app/covera-web/internal/inquiry"
    mw "covera.app/covera-web/internal/middleware"
    "covera.app/covera-web/internal/observability"
    "covera.app/covera-web/internal/phone"
    "covera.app/covera-web/internal/seo"
    "covera.app/covera-web/internal/views"
)

const (
    contactSent  = "Message sent! We'll get back to you soon."
    demoSent     = "Demo request received! We'll be in touch shortly."
    alreadyBusy  = "Your previous submission is still being sent."
    fixErrorsMsg = "Please fix the highlighted fields."
)

// inquiryForm abstracts the differences between the contact and demo forms.
type inquiryForm struct {
    kind    inquiry.Kind
    path    string
    pageKey seo.PageKey
    sent    string
    // page wraps the form for full-page renders.
    page func(views.FormView) g.Node
    form func(views.FormView) g.Node
}

var (
    contactForm = inquiryForm{
        kind: inquiry.KindContact, path: "/contact", pageKey: seo.PageContact, sent: contactSent,
        page: views.ContactPage, form: views.ContactForm,
    }
    demoForm = inquiryForm{
        kind: inquiry.KindDemo, path: "/demo", pageKey: seo.PageDemo, sent: demoSent,
        page: views.DemoPage, form: views.DemoForm,
    }
)

func (s *server) contactPage(w http.ResponseWriter, r *http.Request) {
    s.formPage(w, r, contactForm, http.StatusOK, s.formView(r, contactForm, nil))
}

func (s *server) demoPage(w http.ResponseWriter, r *http.Request) {
    s.formPage(w, r, demoForm, http.StatusOK, s.formView(r, demoForm, nil))
}

func (s *server) submitContact(w http.ResponseWriter, r *http.Request) {
    req := inquiry.ContactRequest{
        Name:    r.PostFormValue("name"),
        Email:   r.PostFormValue("email"),
        Company: r.PostFormValue("company"),
        Message: r.PostFormValue("message"),
    }.Normalize()
    s.handleSubmission(w, r, contactForm, views.ContactValues(req), req.Validate(), func(ctx context.Context) (inquiry.Receipt, error) {
        return s.inquiries.SubmitContact(ctx, req)
    })
}

func (s *server) submitDemo(w http.ResponseWriter, r *http.Request) {
    req := inquiry.DemoRequest{
        Name:        r.PostFormValue("name"),
        Email:       r.PostFormValue("email"),
        Company:     r.PostFormValue("company"),
        Phone:       r.PostFormValue("phone"),
        VendorCount: r.PostFormValue("vendorCount"),
        Message:     r.PostFormValue("message"),
    }.Normalize()
    s.handleSubmission(w, r, demoForm, views.DemoValues(req), req.Validate(), func(ctx context.Context) (inquiry.Receipt, error) {
        return s.inquiries.SubmitDemo(ctx, req)
    })
}

// handleSubmission runs validate -> begin -> submit -> finish for one form post.
func (s *server) handleSubmission(
    w http.ResponseWriter,
    r *http.Request,
    f inquiryForm,
    values map[string]string,
    fieldErrs inquiry.FieldErrors,
    send func(context.Context) (inquiry.Receipt, error),
) {
    start := time.Now()
    log := observability.FromContext(r.Context()).With(zap.String("kind", string(f.kind)))

    if len(fieldErrs) > 0 {
        s.metrics.RecordInquiry(string(f.kind), "invalid", time.Since(start))
        v := s.formView(r, f, values)
        v.Errors = fieldErrs
        v.Toast = &views.Toast{Tone: views.ToneError, Message: fixErrorsMsg}
        s.respondForm(w, r, f, http.StatusUnprocessableEntity, v)
        return
    }

    sess := mw.GetSession(r)
    tracked, err := s.tracker.Begin(sess.ID, f.kind)
    if err != nil {
        s.metrics.RecordInquiry(string(f.kind), "busy", time.Since(start))
        v := s.formView(r, f, values)
        v.Toast = &views.Toast{Tone: views.ToneError, Message: alreadyBusy}
        s.respondForm(w, r, f, http.StatusConflict, v)
        return
    }

    receipt, err := send(r.Context())
    s.tracker.Finish(sess.ID, f.kind, tracked, err)

    if err != nil {
        s.metrics.RecordInquiry(string(f.kind), "failed", time.Since(start))
        fields := []zap.Field{zap.Error(err)}
        var se *inquiry.SubmitError
        if errors.As(err, &se) {
            fields = append(fields, zap.Int("upstream_status", se.Status))
        }
        log.Warn("inquiry submission failed", fields...)
        v := s.formView(r, f, values)
        v.Toast = &views.Toast{Tone: views.ToneError, Message: inquiry.UserMessage(err)}
        s.respondForm(w, r, f, http.StatusBadGateway, v)
        return
    }

    s.metrics.RecordInquiry(string(f.kind), "sent", time.Since(start))
    log.Info("inquiry submitted",
        zap.String("receipt_id", receipt.ID),
        zap.Int("upstream_status", receipt.Status),
        zap.Bool("fake", receipt.Fake),
    )

    if !mw.IsHTMX(r.Context()) {
        sess.SetFlash(views.ToneSuccess, f.sent)
        mw.Redirect(w, r, f.path)
        return
    }
    if f.kind == inquiry.KindDemo {
        mw.Trigger(w, "demo:close")
    }
    v := s.formView(r, f, nil)
    v.Toast = &views.Toast{Tone: views.ToneSuccess, Message: f.sent}
    s.fragment(w, r, http.StatusOK, f.form(v))
}

func (s *server) formView(r *http.Request, f inquiryForm, values map[string]string) views.FormView {
    return views.FormView{
        Kind:   f.kind,
        Action: f.path,
        CSRF:   mw.CSRFToken(r),
        Values: values,
    }
}

// respondForm swaps just the form for htmx and re-renders the page otherwise.
func (s *server) respondForm(w http.ResponseWriter, r *http.Request, f inquiryForm, status int, v views.FormView) {
    if mw.IsHTMX(r.Context()) {
        s.fragment(w, r, status, f.form(v))
        return
    }
    s.formPage(w, r, f, status, v)
}

func (s *server) formPage(w http.ResponseWriter, r *http.Request, f inquiryForm, status int, v views.FormView) {
    s.page(w, r, status, seo.Config(f.pageKey, s.cfg.SiteURL), f.page(v))
}

// formatPhone re-renders the phone field with the (xxx) xxx-xxxx mask applied.
func (s *server) formatPhone(w http.ResponseWriter, r *http.Request) {
    s.fragment(w, r, http.StatusOK, views.PhoneField(phone.Format(r.PostFormValue("phone")), ""))
}
