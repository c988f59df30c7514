package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request
// body sizes to limit bytes. Requests advertising a larger Content-Length
// are rejected with 413 before the handler runs; bodies without a declared
// length are wrapped in http.MaxBytesReader, so a handler reading past the
// limit gets an error mid-read and the connection is closed.
//
// The convert form accepts pasted multi-line free text, which is the only
// reason request bodies here grow beyond a few hundred bytes — anything
// over the limit is a client bug, not a real conversion.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
