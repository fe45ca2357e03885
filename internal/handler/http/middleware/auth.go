package middleware

import (
	"net/http"
	"time"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/session"
)

// SessionRequired gates routes on a held bearer token. The token is never
// verified here; the EMS backend is the authority and will reject a bad one
// with 401 on the next call.
func SessionRequired(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Token(); !ok {
				response.Unauthorized(w, "Login required")
				return
			}

			if expiresAt, ok := sessions.ExpiresAt(); ok && time.Now().After(expiresAt) {
				sessions.Teardown()
				response.Unauthorized(w, "Session expired, login again")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
