package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// GenericFailure is shown when the edge function gives no usable error message.
const GenericFailure = "Failed to send message. Please try again."

const (
	defaultTimeout      = 10 * time.Second
	defaultFunctionName = "send-email"
)

// Config points the client at a Supabase edge function.
type Config struct {
	ProjectID    string
	AnonKey      string
	FunctionName string
	// BaseURL overrides https://{ProjectID}.supabase.co/functions/v1/{FunctionName}.
	BaseURL string
	Timeout time.Duration
}

// Client relays form submissions to the edge function. With no project or base URL it
// accepts everything locally.
type Client struct {
	baseURL string
	rest    *resty.Client
}

// Receipt describes an accepted submission.
type Receipt struct {
	ID       string
	Kind     Kind
	Status   int
	Response map[string]any
	Fake     bool
}

// SubmitError is returned for transport failures and non-2xx responses.
type SubmitError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("inquiry: %s status %d: %s", e.Kind, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("inquiry: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("inquiry: %s: %s", e.Kind, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// UserMessage returns the text to show in the failure toast for err.
func UserMessage(err error) string {
	var se *SubmitError
	if errors.As(err, &se) && strings.TrimSpace(se.Message) != "" {
		return se.Message
	}
	return GenericFailure
}

// NewClient constructs a client from cfg.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" && strings.TrimSpace(cfg.ProjectID) != "" {
		fn := strings.TrimSpace(cfg.FunctionName)
		if fn == "" {
			fn = defaultFunctionName
		}
		base = fmt.Sprintf("https://%s.supabase.co/functions/v1/%s", url.PathEscape(strings.TrimSpace(cfg.ProjectID)), url.PathEscape(fn))
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if base != "" {
		rc.SetBaseURL(base)
	}
	if key := strings.TrimSpace(cfg.AnonKey); key != "" {
		rc.SetAuthToken(key)
	}
	return &Client{baseURL: base, rest: rc}
}

// Fake reports whether the client accepts submissions without calling out.
func (c *Client) Fake() bool { return c == nil || c.baseURL == "" }

// Endpoint returns the absolute URL a kind is posted to.
func (c *Client) Endpoint(kind Kind) string {
	if c.Fake() {
		return ""
	}
	return c.baseURL + "/" + string(kind)
}

// SubmitContact sends a contact form.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (Receipt, error) {
	return c.submit(ctx, KindContact, req)
}

// SubmitDemo sends a demo request.
func (c *Client) SubmitDemo(ctx context.Context, req DemoRequest) (Receipt, error) {
	return c.submit(ctx, KindDemo, req)
}

func (c *Client) submit(ctx context.Context, kind Kind, body any) (Receipt, error) {
	if c.Fake() {
		return fakeReceipt(kind), nil
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		Post("/" + string(kind))
	if err != nil {
		return Receipt{}, &SubmitError{Kind: kind, Message: GenericFailure, Err: err}
	}
	if !resp.IsSuccess() {
		return Receipt{}, &SubmitError{Kind: kind, Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	}
	rcpt := Receipt{ID: uuid.NewString(), Kind: kind, Status: resp.StatusCode()}
	if b := resp.Body(); len(b) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(b, &payload); err == nil {
			rcpt.Response = payload
		}
	}
	return rcpt, nil
}

// errorMessage reads the "error" field of a JSON error body.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return GenericFailure
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return msg
	}
	return GenericFailure
}
