package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter, captures the status code and can run a hook
// right before the first header or body write.
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers fn to run once, just before headers are sent.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) { rw.beforeWrite = fn }

func (rw *ResponseRecorder) writeHeaderOnce(statusCode int) {
	if rw.wrote {
		return
	}
	rw.wrote = true
	rw.status = statusCode
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.writeHeaderOnce(statusCode)
}

func (rw *ResponseRecorder) Write(p []byte) (int, error) {
	rw.writeHeaderOnce(http.StatusOK)
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += int64(n)
	return n, err
}

// Flush implements http.Flusher when the underlying writer does.
func (rw *ResponseRecorder) Flush() {
	rw.writeHeaderOnce(http.StatusOK)
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *ResponseRecorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

func (rw *ResponseRecorder) Status() int { return rw.status }

func (rw *ResponseRecorder) Written() bool { return rw.wrote }

func (rw *ResponseRecorder) BytesWritten() int64 { return rw.bytes }
