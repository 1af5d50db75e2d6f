package middleware

import (
    "crypto/rand"
    "crypto/subtle"
    "encoding/hex"
    "net/http"
    "time"
)

const (
    csrfCookieName = "csrf_token"
    // CSRFHeader carries the token on htmx and fetch requests.
    CSRFHeader = "X-CSRF-Token"
    // CSRFField carries the token on plain form posts.
    CSRFField = "csrf_token"
)

// CSRF issues a CSRF cookie and verifies modifying requests carry the token in the header
// or the csrf_token form field.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Tie token to session: use per-session token from session data
		s := GetSession(r)
		token := s.CSRFToken
		if token == "" { // initialize if missing
			token = newCSRFToken()
			s.CSRFToken = token
			s.MarkDirty()
		}

		// Ensure client has cookie with the same token (double submit cookie)
		needSet := true
		if c, err := r.Cookie(csrfCookieName); err == nil && c.Value == token {
			needSet = false
		}
		if needSet {
			http.SetCookie(w, &http.Cookie{
				Name:     csrfCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: false,
				Secure:   sessionSecure,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}

        if !isSafeMethod(r.Method) {
            sent := r.Header.Get(CSRFHeader)
            if sent == "" {
                sent = r.PostFormValue(CSRFField)
            }
            if !tokensEqual(sent, token) {
                writeError(w, r, http.StatusForbidden, "invalid CSRF token")
                return
            }
            if c, err := r.Cookie(csrfCookieName); err != nil || !tokensEqual(c.Value, token) {
                writeError(w, r, http.StatusForbidden, "invalid CSRF token")
                return
            }
        }

		next.ServeHTTP(w, r)
	})
}

// CSRFToken returns the token to embed in forms for this request.
func CSRFToken(r *http.Request) string {
	return GetSession(r).CSRFToken
}

func tokensEqual(a, b string) bool {
	return a != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
