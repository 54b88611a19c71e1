package middlewares

import (
	"net/http"
)

// BodyLimit caps every request body at APP_REQUEST_BODY_LIMIT_IN_MEGABYTE.
// Reads past the limit fail with *http.MaxBytesError, which the request
// builders turn into a 413.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
