package head

import (
	"bytes"
	"context"
	"mime"
	"net/http"
	"sync"

	"covera.app/covera-web/internal/seo"
)

type ctxKey struct{}

// holder is installed by Middleware; handlers fill it through SetMetadata.
type holder struct {
	mu   sync.Mutex
	meta *seo.PageMetadata
}

// SetMetadata records the metadata to apply to the current response. It is a no-op
// outside Middleware.
func SetMetadata(ctx context.Context, meta seo.PageMetadata) {
	h, ok := ctx.Value(ctxKey{}).(*holder)
	if !ok {
		return
	}
	h.mu.Lock()
	h.meta = &meta
	h.mu.Unlock()
}

// MetadataFrom returns the metadata recorded for the current response, if any.
func MetadataFrom(ctx context.Context) (seo.PageMetadata, bool) {
	h, ok := ctx.Value(ctxKey{}).(*holder)
	if !ok {
		return seo.PageMetadata{}, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.meta == nil {
		return seo.PageMetadata{}, false
	}
	return *h.meta, true
}

// Observer is notified after each synchronized response.
type Observer func(path string, created int, err error)

// Middleware buffers HTML responses whose handler called SetMetadata, synchronizes their
// <head> and writes the result. Other responses are passed through unchanged.
func Middleware(opts Options, observe Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := &holder{}
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, h))
			bw := &bufferedWriter{w: w}
			next.ServeHTTP(bw, r)

			meta, ok := MetadataFrom(r.Context())
			if !ok || !isHTML(w.Header().Get("Content-Type")) || r.Method == http.MethodHead {
				bw.flush(bw.buf.Bytes())
				return
			}
			out, created, err := Sync(bw.buf.Bytes(), meta, r.URL.Path, opts)
			if observe != nil {
				observe(r.URL.Path, created, err)
			}
			if err != nil {
				bw.flush(bw.buf.Bytes())
				return
			}
			bw.flush(out)
		})
	}
}

// Sync parses page, applies meta for path and returns the rendered document along with
// the number of head nodes that had to be created.
func Sync(page []byte, meta seo.PageMetadata, path string, opts Options) ([]byte, int, error) {
	doc, err := ParseDocument(bytes.NewReader(page))
	if err != nil {
		return nil, 0, err
	}
	m := NewManager(doc, opts)
	m.Apply(meta, path)
	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		return nil, 0, err
	}
	return out.Bytes(), m.Created(), nil
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "text/html"
}

type bufferedWriter struct {
	w      http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.w.Header() }

func (b *bufferedWriter) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.buf.Write(p)
}

func (b *bufferedWriter) flush(body []byte) {
	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	b.w.Header().Del("Content-Length")
	b.w.WriteHeader(status)
	_, _ = b.w.Write(body)
}
